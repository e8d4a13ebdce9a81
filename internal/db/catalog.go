package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JustinWhittecar/bvcalc/internal/equipment"
)

// LoadEquipmentRows reads the catalog database's equipment table for
// overlaying onto the built-in catalog.
func LoadEquipmentRows(ctx context.Context, db *sql.DB) ([]equipment.Row, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, type, COALESCE(bv,0), COALESCE(heat,0), COALESCE(rack_size,0),
		tonnage, slots, COALESCE(internal_name,'') FROM equipment ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	var out []equipment.Row
	for rows.Next() {
		var r equipment.Row
		if err := rows.Scan(&r.Name, &r.Type, &r.BV, &r.Heat, &r.RackSize, &r.Tonnage, &r.Slots, &r.InternalName); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PublishedBV is a variant's battle value as printed in the source data.
type PublishedBV struct {
	VariantID   int
	ChassisName string
	ModelCode   string
	Name        string
	TechBase    string
	Tonnage     int
	BattleValue int
}

// LoadPublishedBV reads every variant with a published battle value.
func LoadPublishedBV(ctx context.Context, db *sql.DB) ([]PublishedBV, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT v.id, c.name, v.model_code, v.name, COALESCE(v.battle_value,0), c.tech_base, c.tonnage
		FROM variants v
		JOIN chassis c ON v.chassis_id = c.id
		WHERE v.battle_value > 0
		ORDER BY c.name, v.model_code
	`)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()

	var out []PublishedBV
	for rows.Next() {
		var v PublishedBV
		if err := rows.Scan(&v.VariantID, &v.ChassisName, &v.ModelCode, &v.Name, &v.BattleValue, &v.TechBase, &v.Tonnage); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
