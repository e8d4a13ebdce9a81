package bv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNominalArcs(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		sums map[Arc]float64
		want ArcAssignment
	}{
		{
			name: "nose strongest",
			kind: KindDropShip,
			sums: map[Arc]float64{ArcNose: 100, ArcLeft: 40, ArcRight: 20, ArcAft: 50},
			want: ArcAssignment{Nose: ArcNose, Left: ArcLeft, Right: ArcRight},
		},
		{
			name: "stronger neighbour before nose becomes left",
			kind: KindDropShip,
			sums: map[Arc]float64{ArcNose: 10, ArcLeft: 30, ArcAft: 20},
			want: ArcAssignment{Nose: ArcLeft, Left: ArcNose, Right: ArcLeftAft},
		},
		{
			name: "no weapons",
			kind: KindJumpShip,
			sums: map[Arc]float64{},
			want: ArcAssignment{Nose: ArcNose, Left: ArcLeft, Right: ArcRight},
		},
		{
			name: "opposite arcs tied",
			kind: KindDropShip,
			sums: map[Arc]float64{ArcNose: 50, ArcAft: 50},
			want: ArcAssignment{Nose: ArcNose, Left: ArcLeft, Right: ArcRight},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveNominalArcs(tt.kind, tt.sums))
		})
	}
}

// The WarShip rule takes the arc opposite nominal left as nominal right
// rather than the weaker neighbour of the nose. This mirrors the tabletop
// rule and is deliberately asymmetric.
func TestResolveNominalArcsWarShipOppositeIsIntentional(t *testing.T) {
	sums := map[Arc]float64{ArcNose: 100, ArcLeft: 10, ArcRight: 30}
	got := ResolveNominalArcs(KindWarShip, sums)

	assert.Equal(t, ArcNose, got.Nose)
	assert.Equal(t, ArcRight, got.Left)
	assert.Equal(t, ArcLeft, got.WeakerAdjacent)
	assert.Equal(t, ArcLeftAft, got.Right, "right is opposite nominal left, not the weaker neighbour")
}

func TestResolveNominalArcsWarShipTie(t *testing.T) {
	sums := map[Arc]float64{ArcNose: 100, ArcAft: 100}
	first := ResolveNominalArcs(KindWarShip, sums)

	assert.Equal(t, ArcNose, first.Nose, "tie goes to the first arc in ring order")
	assert.Equal(t, ArcLeft, first.Left)
	assert.Equal(t, ArcRight, first.WeakerAdjacent)
	assert.Equal(t, ArcRightAft, first.Right)

	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ResolveNominalArcs(KindWarShip, sums))
	}

	// Moving the tie off the nose still resolves by ring order.
	sums = map[Arc]float64{ArcLeftBroadside: 70, ArcRightBroadside: 70}
	got := ResolveNominalArcs(KindWarShip, sums)
	assert.Equal(t, ArcLeftBroadside, got.Nose)
}

func TestArcMultiplier(t *testing.T) {
	a := ArcAssignment{Nose: ArcLeft, Left: ArcNose, Right: ArcLeftAft}
	assert.Equal(t, 1.0, a.Multiplier(ArcLeft))
	assert.Equal(t, 0.5, a.Multiplier(ArcNose))
	assert.Equal(t, 0.5, a.Multiplier(ArcLeftAft))
	assert.Equal(t, 0.25, a.Multiplier(ArcAft))
	assert.Equal(t, 0.25, a.Multiplier(ArcRight))
}

func TestFrontRear(t *testing.T) {
	rear := func(m *Mounted) bool { return m.Rear }
	front := rec("front", 3, 10)
	back := rec("back", 3, 20)
	back.Mounted.Rear = true

	out, lines := frontRear([]WeaponRecord{front, back}, rear)
	assert.Equal(t, 5.0, out[0].BV, "front halved when rear is stronger")
	assert.Equal(t, 20.0, out[1].BV)
	assert.Contains(t, lines, note("Rear arc is front", "front weapons x 0.5"))

	back.BV = 8
	out, _ = frontRear([]WeaponRecord{front, back}, rear)
	assert.Equal(t, 10.0, out[0].BV)
	assert.Equal(t, 4.0, out[1].BV)
}

func TestBestArc(t *testing.T) {
	turret := rec("turret", 3, 46)
	turret.Mounted.Arc = ArcTurret
	front := rec("front", 0, 20)
	back := rec("back", 0, 30)
	back.Mounted.Rear = true

	out, _ := bestArc([]WeaponRecord{turret, front, back})
	assert.Equal(t, 46.0, out[0].BV)
	assert.Equal(t, 10.0, out[1].BV)
	assert.Equal(t, 30.0, out[2].BV)
}
