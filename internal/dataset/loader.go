package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrSourceNotFound indicates the source document does not exist.
	ErrSourceNotFound = errors.New("card source not found")
	// ErrParse indicates the source document is not well-formed JSON.
	ErrParse = errors.New("card source is not valid JSON")
)

// Dataset is the immutable, ordered card collection the query engine reads.
// It is built exactly once at startup and never mutated afterwards, so
// concurrent readers need no locking.
type Dataset struct {
	cards []Card
}

// Len returns the number of cards.
func (d *Dataset) Len() int {
	return len(d.cards)
}

// Cards returns the backing slice in stored order. Callers must treat it as
// read-only.
func (d *Dataset) Cards() []Card {
	return d.cards
}

// Load reads and normalizes the card document at path. It either produces a
// complete Dataset or fails; there are no partial loads and no retries.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("reading card source %s: %w", path, err)
	}
	return Parse(data)
}

// Parse normalizes a raw JSON document into a Dataset. Accepted shapes:
//   - a top-level array of records, used in order
//   - a top-level object with a "cards" array, which is used
//   - any other top-level object, whose member values are used in the
//     order they appear in the document
//
// Any other top-level value yields an empty Dataset.
func Parse(data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// Scalar document: nothing card-shaped in it.
		return &Dataset{}, nil
	}

	var ds *Dataset
	switch delim {
	case '[':
		cards, err := decodeCardArray(dec)
		if err != nil {
			return nil, err
		}
		ds = &Dataset{cards: cards}
	case '{':
		ds, err = parseMapping(dec)
		if err != nil {
			return nil, err
		}
	}

	// Trailing content after the document makes the whole source malformed.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return ds, nil
}

// parseMapping walks an object's members in document order. Go maps do not
// preserve member order, so this stays on the token stream.
func parseMapping(dec *json.Decoder) (*Dataset, error) {
	type member struct {
		key string
		raw json.RawMessage
	}
	var members []member

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrParse)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		members = append(members, member{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// A "cards" member bound to an array wins over the values fallback.
	for _, m := range members {
		if m.key == "cards" && isArray(m.raw) {
			var cards []Card
			if err := json.Unmarshal(m.raw, &cards); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			return &Dataset{cards: cards}, nil
		}
	}

	cards := make([]Card, 0, len(members))
	for _, m := range members {
		var c Card
		if err := json.Unmarshal(m.raw, &c); err != nil {
			return nil, fmt.Errorf("%w: mapping value for %q is not a record: %v", ErrParse, m.key, err)
		}
		cards = append(cards, c)
	}
	return &Dataset{cards: cards}, nil
}

func decodeCardArray(dec *json.Decoder) ([]Card, error) {
	var cards []Card
	for dec.More() {
		var c Card
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		cards = append(cards, c)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return cards, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
