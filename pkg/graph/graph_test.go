package graph

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONRoundTrip(t *testing.T) {
	g := Export(buildTrie("wave", "wavy", "reef"), WithMeta("theme", "ocean"))

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if diff := cmp.Diff(g.Nodes, got.Nodes); diff != "" {
		t.Errorf("nodes changed by round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Edges, got.Edges); diff != "" {
		t.Errorf("edges changed by round trip (-want +got):\n%s", diff)
	}
	if got.Meta["theme"] != "ocean" {
		t.Errorf("Meta[theme] = %v, want ocean", got.Meta["theme"])
	}
}

func TestExportImportJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trie.json")
	g := Export(buildTrie("tide"))

	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if got.NodeCount() != g.NodeCount() {
		t.Errorf("NodeCount() = %d, want %d", got.NodeCount(), g.NodeCount())
	}
}

func TestImportJSON_MissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ImportJSON() should fail for a missing file")
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"empty", `{"nodes": [], "edges": []}`, ErrEmptyGraph},
		{"duplicate", `{"nodes": [{"id": "root"}, {"id": "root"}], "edges": [{"from": "root", "to": "root"}]}`, ErrDuplicateNodeID},
		{"unknown endpoint", `{"nodes": [{"id": "root"}, {"id": "root_a"}], "edges": [{"from": "root", "to": "root_b"}]}`, ErrUnknownEndpoint},
		{"too many edges", `{"nodes": [{"id": "root"}], "edges": [{"from": "root", "to": "root"}]}`, ErrNotTree},
		{"two parents", `{"nodes": [{"id": "root"}, {"id": "a"}, {"id": "b"}], "edges": [{"from": "root", "to": "b"}, {"from": "a", "to": "b"}]}`, ErrNotTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.json))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSON() should fail on malformed JSON")
	}
}
