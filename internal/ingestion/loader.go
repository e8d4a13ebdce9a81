package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
)

// LoadUnit reads a unit from disk. MegaMek .mtf files go through the MTF
// parser; .json files hold a bv.Unit snapshot of any kind. The returned
// names are crit slots the catalog could not resolve.
func LoadUnit(path string, cat *equipment.Catalog) (*bv.Unit, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtf":
		d, err := ParseMTF(path)
		if err != nil {
			return nil, nil, err
		}
		return ToUnit(d, cat)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open unit: %w", err)
		}
		defer f.Close()
		u, err := DecodeUnit(f)
		return u, nil, err
	default:
		return nil, nil, fmt.Errorf("%s: unsupported unit file type", path)
	}
}

// DecodeUnit reads one JSON unit snapshot.
func DecodeUnit(r io.Reader) (*bv.Unit, error) {
	var u bv.Unit
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode unit: %w", err)
	}
	return &u, nil
}
