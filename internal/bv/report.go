package bv

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Line is one step of a calculation report.
type Line struct {
	Label       string `json:"label"`
	Calculation string `json:"calculation,omitempty"`
	Result      string `json:"result"`
}

// Report is the ordered trace of one calculation. Append never touches the
// lines of an earlier Report value, so a report handed out stays as written.
type Report struct {
	lines []Line
}

// Append returns a report with lines added after the existing ones.
func (r Report) Append(lines ...Line) Report {
	out := make([]Line, 0, len(r.lines)+len(lines))
	out = append(out, r.lines...)
	out = append(out, lines...)
	return Report{lines: out}
}

// Lines returns a copy of the report lines.
func (r Report) Lines() []Line {
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r Report) Len() int { return len(r.lines) }

// Find returns the first line with the given label.
func (r Report) Find(label string) (Line, bool) {
	for _, l := range r.lines {
		if l.Label == label {
			return l, true
		}
	}
	return Line{}, false
}

// String renders one tab separated line per step.
func (r Report) String() string {
	var b strings.Builder
	for _, l := range r.lines {
		b.WriteString(l.Label)
		b.WriteByte('\t')
		b.WriteString(l.Calculation)
		b.WriteByte('\t')
		b.WriteString(l.Result)
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalJSON encodes the report as an array of lines.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.lines == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.lines)
}

func (r *Report) UnmarshalJSON(data []byte) error {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	r.lines = lines
	return nil
}

func line(label, calc string, result float64) Line {
	return Line{Label: label, Calculation: calc, Result: num(result)}
}

func na(label string) Line {
	return Line{Label: label, Result: "N/A"}
}

func note(label, text string) Line {
	return Line{Label: label, Result: text}
}

// num formats with at most two decimals and no trailing zeros.
func num(x float64) string {
	if x == 0 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func times(a, b float64) string {
	return num(a) + " x " + num(b)
}
