package misorient

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type reporter interface {
	Report(w io.Writer, res Result) error
}

// textReporter prints the result the way the calculator UI lays it out,
// with locale-aware number formatting.
type textReporter struct {
	p         *message.Printer
	precision int
}

type jsonReporter struct{}

func newReporter(format, lang string, precision int) (reporter, error) {
	switch format {
	case "", FormatText:
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parse language %q: %w", lang, err)
		}
		if precision <= 0 {
			precision = Precision
		}
		return textReporter{p: message.NewPrinter(tag), precision: precision}, nil
	case FormatJSON:
		return jsonReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}

// positiveZero drops the sign of -0 so it never prints as "-0.00".
func positiveZero(v Real) Real {
	if v == 0 {
		return 0
	}
	return v
}

func (r textReporter) num(v Real) string {
	return r.p.Sprintf(fmt.Sprintf("%%.%df", r.precision), positiveZero(v))
}

func (r textReporter) padded(v Real) string {
	return r.p.Sprintf(fmt.Sprintf("%%%d.%df", r.precision+5, r.precision), positiveZero(v))
}

func (r textReporter) Report(w io.Writer, res Result) error {
	M := res.Misorientation
	lines := []string{"Misorientation matrix (M):"}
	for row := 0; row < 3; row++ {
		lines = append(lines, fmt.Sprintf("  [%s %s %s]",
			r.padded(M.M[row][0]), r.padded(M.M[row][1]), r.padded(M.M[row][2])))
	}
	lines = append(lines,
		fmt.Sprintf("%-36s %s", "Misorientation angle (deg):", r.num(res.MisorientationDeg)),
		fmt.Sprintf("%-36s %s", "Minimum disorientation angle (deg):", r.num(res.DisorientationDeg)),
		fmt.Sprintf("%-36s [%s %s %s]", "Rotation axis (unit vector):",
			r.num(res.Axis.X), r.num(res.Axis.Y), r.num(res.Axis.Z)),
	)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func (jsonReporter) Report(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
