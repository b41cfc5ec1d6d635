package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestStats(t *testing.T) {
	router := testRouter(t, testDoc)
	rec := doGet(t, router, "/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /stats = %d: %s", rec.Code, rec.Body.String())
	}

	var st struct {
		Total    int            `json:"total"`
		Types    map[string]int `json:"types"`
		Rarities map[string]int `json:"rarities"`
		Sets     map[string]int `json:"sets"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Total != 4 {
		t.Errorf("total = %d, want 4", st.Total)
	}
	if st.Types["Fire"] != 2 || st.Types["Electric"] != 1 || st.Types["Grass"] != 1 {
		t.Errorf("types = %v", st.Types)
	}
	if st.Rarities["Common"] != 3 || st.Rarities["Double Rare"] != 1 {
		t.Errorf("rarities = %v", st.Rarities)
	}
	if st.Sets["A1"] != 3 || st.Sets["A2"] != 1 {
		t.Errorf("sets = %v", st.Sets)
	}
}

func TestRoot(t *testing.T) {
	router := testRouter(t, testDoc)
	rec := doGet(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	var info map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info["version"] != Version {
		t.Errorf("version = %q, want %q", info["version"], Version)
	}
	if info["message"] == "" {
		t.Error("message missing")
	}
}
