package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Load on missing file = %v, want ErrSourceNotFound", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	for _, content := range []string{"{not json", `[{"id": }]`, `[] trailing`} {
		path := writeSource(t, content)
		if _, err := Load(path); !errors.Is(err, ErrParse) {
			t.Errorf("Load(%q) = %v, want ErrParse", content, err)
		}
	}
}

func TestLoad_ArraySource(t *testing.T) {
	path := writeSource(t, `[
		{"id": "/A1/001", "name": "Pikachu"},
		{"id": "/A1/002", "name": "Bulbasaur"}
	]`)
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ds.Len())
	}
	if got := ds.Cards()[0].Name; got != "Pikachu" {
		t.Errorf("first card = %q, want Pikachu", got)
	}
	if got := ds.Cards()[1].Name; got != "Bulbasaur" {
		t.Errorf("second card = %q, want Bulbasaur", got)
	}
}

func TestParse_CardsKey(t *testing.T) {
	ds, err := Parse([]byte(`{
		"version": "1",
		"cards": [
			{"id": "/A1/001", "name": "Pikachu"},
			{"id": "/A1/002", "name": "Bulbasaur"}
		]
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("Len = %d, want 2", ds.Len())
	}
	if got := ds.Cards()[0].ID; got != "/A1/001" {
		t.Errorf("first id = %q, want /A1/001", got)
	}
}

func TestParse_CardsKeyNotArrayFallsThrough(t *testing.T) {
	// "cards" bound to a non-array does not win; the mapping's values are
	// used instead, in document order.
	ds, err := Parse([]byte(`{
		"cards": {"id": "/A1/001", "name": "Pikachu"},
		"extra": {"id": "/A1/002", "name": "Bulbasaur"}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ds.Len())
	}
	if got := ds.Cards()[0].Name; got != "Pikachu" {
		t.Errorf("first card = %q, want Pikachu", got)
	}
}

func TestParse_MappingValuesPreserveDocumentOrder(t *testing.T) {
	ds, err := Parse([]byte(`{
		"zz": {"id": "/A1/001", "name": "First"},
		"aa": {"id": "/A1/002", "name": "Second"},
		"mm": {"id": "/A1/003", "name": "Third"}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	if ds.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", ds.Len(), len(want))
	}
	for i, name := range want {
		if got := ds.Cards()[i].Name; got != name {
			t.Errorf("card %d = %q, want %q", i, got, name)
		}
	}
}

func TestParse_ScalarYieldsEmptyDataset(t *testing.T) {
	ds, err := Parse([]byte(`"just a string"`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("Len = %d, want 0", ds.Len())
	}
}

func TestParse_EmptyShapes(t *testing.T) {
	for _, content := range []string{`[]`, `{}`} {
		ds, err := Parse([]byte(content))
		if err != nil {
			t.Fatalf("Parse(%q): %v", content, err)
		}
		if ds.Len() != 0 {
			t.Errorf("Parse(%q).Len = %d, want 0", content, ds.Len())
		}
	}
}
