package render

import (
	"reflect"
	"testing"

	"github.com/matzehuels/wordtrie/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []Format
		wantErr bool
	}{
		{"", []Format{FormatSVG}, false},
		{"svg", []Format{FormatSVG}, false},
		{"dot,json", []Format{FormatDOT, FormatJSON}, false},
		{" PNG , svg", []Format{FormatPNG, FormatSVG}, false},
		{"pdf", nil, true},
		{"svg,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormats(%q) code = %q, want INVALID_FORMAT", tt.in, errors.GetCode(err))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatPNG.Ext() != ".png" {
		t.Errorf("Ext() = %q, want .png", FormatPNG.Ext())
	}
	if !FormatSVG.NeedsGraphviz() || FormatDOT.NeedsGraphviz() || FormatJSON.NeedsGraphviz() {
		t.Error("NeedsGraphviz() should be true only for svg and png")
	}
}
