// Package models holds the JSON shapes served by the HTTP API.
package models

import "github.com/JustinWhittecar/bvcalc/internal/bv"

type CalcResult struct {
	ID              string    `json:"id,omitempty"`
	Unit            string    `json:"unit"`
	Kind            bv.Kind   `json:"kind"`
	BV              int       `json:"battle_value"`
	AdjustedBV      int       `json:"adjusted_battle_value"`
	Gunnery         int       `json:"gunnery"`
	Piloting        int       `json:"piloting"`
	Defensive       float64   `json:"defensive_br"`
	Offensive       float64   `json:"offensive_br"`
	HeatEfficiency  float64   `json:"heat_efficiency,omitempty"`
	HeatUsed        float64   `json:"heat_used,omitempty"`
	HeatExceeded    bool      `json:"heat_exceeded,omitempty"`
	DefensiveFactor float64   `json:"defensive_factor"`
	SpeedFactor     float64   `json:"speed_factor"`
	Troopers        []float64 `json:"troopers,omitempty"`
	Unknown         []string  `json:"unknown_equipment,omitempty"`
	Report          []bv.Line `json:"report"`
}

// NewCalcResult flattens a calculation result for the API.
func NewCalcResult(res bv.Result, adjusted, gunnery, piloting int) CalcResult {
	return CalcResult{
		Unit:            res.Unit,
		Kind:            res.Kind,
		BV:              res.BV,
		AdjustedBV:      adjusted,
		Gunnery:         gunnery,
		Piloting:        piloting,
		Defensive:       res.Defensive,
		Offensive:       res.Offensive,
		HeatEfficiency:  res.HeatEfficiency,
		HeatUsed:        res.HeatUsed,
		HeatExceeded:    res.HeatExceeded,
		DefensiveFactor: res.DefensiveFactor,
		SpeedFactor:     res.SpeedFactor,
		Troopers:        res.Troopers,
		Report:          res.Report.Lines(),
	}
}

type EquipmentName struct {
	Name         string      `json:"name"`
	InternalName string      `json:"internal_name"`
	Clan         bool        `json:"clan"`
	Category     bv.Category `json:"category"`
	Type         string      `json:"type,omitempty"`
	BV           float64     `json:"bv"`
	Heat         float64     `json:"heat"`
	Slots        int         `json:"slots"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
