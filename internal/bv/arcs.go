package bv

import "fmt"

// Arc is a firing arc.
type Arc string

const (
	ArcNose           Arc = "nose"
	ArcLeft           Arc = "left"
	ArcLeftAft        Arc = "left_aft"
	ArcAft            Arc = "aft"
	ArcRightAft       Arc = "right_aft"
	ArcRight          Arc = "right"
	ArcLeftBroadside  Arc = "left_broadside"
	ArcRightBroadside Arc = "right_broadside"
	ArcTurret         Arc = "turret"
)

// Rings list arcs in circular order starting at the nose. The order is also
// the tie-break when arcs carry equal BV.
var (
	vesselRing  = []Arc{ArcNose, ArcLeft, ArcLeftAft, ArcAft, ArcRightAft, ArcRight}
	warshipRing = []Arc{ArcNose, ArcLeft, ArcLeftBroadside, ArcLeftAft, ArcAft, ArcRightAft, ArcRightBroadside, ArcRight}
	vehicleArcs = []Arc{ArcNose, ArcLeft, ArcRight, ArcAft}
)

func ringFor(kind Kind) []Arc {
	if kind == KindWarShip {
		return warshipRing
	}
	return vesselRing
}

// ArcAssignment names the nominal arcs of a large vessel.
type ArcAssignment struct {
	Nose  Arc `json:"nose"`
	Left  Arc `json:"left"`
	Right Arc `json:"right"`
	// WeakerAdjacent is the lower-BV neighbour of Nose (WarShip class only).
	WeakerAdjacent Arc `json:"weakerAdjacent,omitempty"`
}

// ResolveNominalArcs picks the nominal nose, left and right arcs from the
// summed undiscounted weapon BV of each arc.
//
// WarShips take the arc opposite nominal left as nominal right instead of
// the weaker neighbour of the nose.
func ResolveNominalArcs(kind Kind, sums map[Arc]float64) ArcAssignment {
	ring := ringFor(kind)
	n := len(ring)

	nose := 0
	for i := 1; i < n; i++ {
		if sums[ring[i]] > sums[ring[nose]] {
			nose = i
		}
	}

	after := (nose + 1) % n
	before := (nose + n - 1) % n
	left, right := after, before
	if sums[ring[before]] > sums[ring[after]] {
		left, right = before, after
	}

	a := ArcAssignment{Nose: ring[nose], Left: ring[left], Right: ring[right]}
	if kind == KindWarShip {
		a.WeakerAdjacent = ring[right]
		a.Right = ring[(left+n/2)%n]
	}
	return a
}

// Multiplier returns the BV multiplier for weapons in arc.
func (a ArcAssignment) Multiplier(arc Arc) float64 {
	switch arc {
	case a.Nose:
		return 1.0
	case a.Left, a.Right:
		return 0.5
	default:
		return 0.25
	}
}

func (a ArcAssignment) lines() []Line {
	out := []Line{
		note("Nominal nose arc", string(a.Nose)),
		note("Nominal left arc", string(a.Left)),
		note("Nominal right arc", string(a.Right)),
	}
	if a.WeakerAdjacent != "" {
		out = append(out, note("Weaker adjacent arc", string(a.WeakerAdjacent)))
	}
	return out
}

// frontRear applies the rear-arc rule used by Meks and fighters: rear
// weapons count half, unless they outweigh the front, in which case the
// front weapons count half instead.
func frontRear(recs []WeaponRecord, isRear func(*Mounted) bool) ([]WeaponRecord, []Line) {
	var front, rear float64
	for _, r := range recs {
		if isRear(r.Mounted) {
			rear += r.BV
		} else {
			front += r.BV
		}
	}
	halfRear := rear <= front
	out := make([]WeaponRecord, len(recs))
	for i, r := range recs {
		if isRear(r.Mounted) == halfRear {
			r.BV *= 0.5
		}
		out[i] = r
	}
	lines := []Line{line("Front arc weapons", "", front), line("Rear arc weapons", "", rear)}
	if !halfRear {
		lines = append(lines, note("Rear arc is front", "front weapons x 0.5"))
	}
	return out, lines
}

// bestArc applies the vehicle arc rule: the turret and the strongest other
// arc count in full, every other arc at half.
func bestArc(recs []WeaponRecord) ([]WeaponRecord, []Line) {
	sums := make(map[Arc]float64)
	for _, r := range recs {
		sums[vehicleArc(r.Mounted)] += r.BV
	}
	best := vehicleArcs[0]
	for _, a := range vehicleArcs[1:] {
		if sums[a] > sums[best] {
			best = a
		}
	}
	out := make([]WeaponRecord, len(recs))
	for i, r := range recs {
		arc := vehicleArc(r.Mounted)
		if arc != best && arc != ArcTurret {
			r.BV *= 0.5
		}
		out[i] = r
	}
	return out, []Line{note("Primary arc", fmt.Sprintf("%s (%s)", best, num(sums[best])))}
}

func vehicleArc(m *Mounted) Arc {
	switch m.Arc {
	case "":
		if m.Rear {
			return ArcAft
		}
		return ArcNose
	case ArcLeftAft, ArcLeftBroadside:
		return ArcLeft
	case ArcRightAft, ArcRightBroadside:
		return ArcRight
	default:
		return m.Arc
	}
}

func vesselArc(m *Mounted) Arc {
	if m.Arc == "" {
		if m.Rear {
			return ArcAft
		}
		return ArcNose
	}
	return m.Arc
}
