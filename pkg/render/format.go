package render

import (
	"strings"

	"github.com/matzehuels/wordtrie/pkg/errors"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatSVG, FormatPNG, FormatDOT, FormatJSON}

// Ext returns the file extension for f, including the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// NeedsGraphviz reports whether producing f requires the Graphviz engine.
func (f Format) NeedsGraphviz() bool { return f == FormatSVG || f == FormatPNG }

// ParseFormat validates a single format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be svg, png, dot or json)", s)
}

// ParseFormats parses a comma-separated list. An empty string yields [FormatSVG].
func ParseFormats(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return []Format{FormatSVG}, nil
	}
	var out []Format
	for _, part := range strings.Split(s, ",") {
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
