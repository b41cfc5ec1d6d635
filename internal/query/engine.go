package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kartikbazzad/cardbase/internal/dataset"
)

var (
	// ErrNotLoaded indicates a query arrived before a dataset was published.
	ErrNotLoaded = errors.New("card dataset not loaded")
	// ErrNotFound indicates no card matches a keyed lookup.
	ErrNotFound = errors.New("card not found")
)

// Engine answers read-only queries over an immutable dataset handle. Every
// operation is a bounded in-memory scan; nothing blocks, retries or mutates,
// so a single Engine value is safe for concurrent use.
type Engine struct {
	ds *dataset.Dataset
}

// NewEngine returns an engine over ds. A nil ds is allowed; every query then
// fails with ErrNotLoaded.
func NewEngine(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Ready reports whether a dataset has been published.
func (e *Engine) Ready() error {
	if e == nil || e.ds == nil {
		return ErrNotLoaded
	}
	return nil
}

func (e *Engine) cards() ([]dataset.Card, error) {
	if err := e.Ready(); err != nil {
		return nil, err
	}
	return e.ds.Cards(), nil
}

// List returns cards in stored order, skipping offset records and, when
// limit > 0, truncating to limit records. An offset past the end yields an
// empty result, not an error.
func (e *Engine) List(limit, offset int) ([]dataset.Card, error) {
	cards, err := e.cards()
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(cards) {
		return []dataset.Card{}, nil
	}
	out := cards[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// GetByKey returns the first card whose id equals "/{setID}/{cardID}".
func (e *Engine) GetByKey(setID, cardID string) (dataset.Card, error) {
	cards, err := e.cards()
	if err != nil {
		return dataset.Card{}, err
	}
	key := "/" + setID + "/" + cardID
	for _, c := range cards {
		if c.ID == key {
			return c, nil
		}
	}
	return dataset.Card{}, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// SearchByName returns every card whose name contains q, case-insensitively.
func (e *Engine) SearchByName(q string) ([]dataset.Card, error) {
	q = strings.ToLower(q)
	return e.scan(func(c dataset.Card) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	})
}

// FilterByType returns every card whose type equals t, case-insensitively.
func (e *Engine) FilterByType(t string) ([]dataset.Card, error) {
	return e.scan(func(c dataset.Card) bool {
		return strings.EqualFold(c.Type, t)
	})
}

// FilterByRarity returns every card whose rarity equals r, case-insensitively.
func (e *Engine) FilterByRarity(r string) ([]dataset.Card, error) {
	return e.scan(func(c dataset.Card) bool {
		return strings.EqualFold(c.Rarity, r)
	})
}

// FilterBySet returns every card whose set equals s, case-insensitively.
func (e *Engine) FilterBySet(s string) ([]dataset.Card, error) {
	return e.scan(func(c dataset.Card) bool {
		return strings.EqualFold(c.Set, s)
	})
}

func (e *Engine) scan(match func(dataset.Card) bool) ([]dataset.Card, error) {
	cards, err := e.cards()
	if err != nil {
		return nil, err
	}
	out := []dataset.Card{}
	for _, c := range cards {
		if match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Stats summarizes the collection: total card count plus frequency tables
// for type, rarity and set.
type Stats struct {
	Total    int            `json:"total"`
	Types    map[string]int `json:"types"`
	Rarities map[string]int `json:"rarities"`
	Sets     map[string]int `json:"sets"`
}

// UnknownLabel is tallied when a record is missing a stats field entirely.
// Present-but-empty values count under their own (empty) label, and casing
// is preserved as found in the data.
const UnknownLabel = "Unknown"

// Stats tallies the frequency tables in a single pass.
func (e *Engine) Stats() (Stats, error) {
	cards, err := e.cards()
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Total:    len(cards),
		Types:    map[string]int{},
		Rarities: map[string]int{},
		Sets:     map[string]int{},
	}
	for _, c := range cards {
		st.Types[label(c, dataset.FieldType)]++
		st.Rarities[label(c, dataset.FieldRarity)]++
		st.Sets[label(c, dataset.FieldSet)]++
	}
	return st, nil
}

func label(c dataset.Card, field string) string {
	v, ok := c.Field(field)
	if !ok {
		return UnknownLabel
	}
	return v
}
