package bv

import "errors"

// ErrCallerMisuse is wrapped by every error the calculator returns. Missing
// data and clamped values are never errors; they show up in the report.
var ErrCallerMisuse = errors.New("bv: caller misuse")

var (
	ErrUnknownKind     = misuse("unknown unit kind")
	ErrVariantMismatch = misuse("variant does not match unit kind")
	ErrNoLocations     = misuse("unit has no locations")
	ErrSkillRange      = misuse("skill rating out of range")
)

type misuseError struct{ msg string }

func misuse(msg string) error { return &misuseError{msg: msg} }

func (e *misuseError) Error() string { return "bv: " + e.msg }

func (e *misuseError) Unwrap() error { return ErrCallerMisuse }
