package dataset

import "encoding/json"

// Known card field keys. Everything else in a source record is opaque
// passthrough data.
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldType   = "type"
	FieldRarity = "rarity"
	FieldSet    = "set"
)

// Card represents a single card record. The five known fields are lifted
// into typed accessors; the full source record is retained so unrecognized
// fields survive the round trip untouched. A known field whose value is not
// a JSON string is kept in the record but its typed field stays empty.
type Card struct {
	ID     string
	Name   string
	Type   string
	Rarity string
	Set    string

	fields map[string]json.RawMessage
}

// UnmarshalJSON decodes a source record, lifting the known string fields.
func (c *Card) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	c.fields = fields
	c.ID = stringField(fields, FieldID)
	c.Name = stringField(fields, FieldName)
	c.Type = stringField(fields, FieldType)
	c.Rarity = stringField(fields, FieldRarity)
	c.Set = stringField(fields, FieldSet)
	return nil
}

// MarshalJSON emits the original record, including fields the service does
// not interpret. Cards built in code (no source record) fall back to the
// typed fields.
func (c Card) MarshalJSON() ([]byte, error) {
	if c.fields != nil {
		return json.Marshal(c.fields)
	}
	out := map[string]string{}
	if c.ID != "" {
		out[FieldID] = c.ID
	}
	if c.Name != "" {
		out[FieldName] = c.Name
	}
	if c.Type != "" {
		out[FieldType] = c.Type
	}
	if c.Rarity != "" {
		out[FieldRarity] = c.Rarity
	}
	if c.Set != "" {
		out[FieldSet] = c.Set
	}
	return json.Marshal(out)
}

// Field returns the string value of a top-level record member and whether
// the member is present as a JSON string. Used where missing and empty must
// be told apart (the stats "Unknown" label applies only to missing fields).
func (c Card) Field(key string) (string, bool) {
	raw, ok := c.fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func stringField(fields map[string]json.RawMessage, key string) string {
	s, _ := Card{fields: fields}.Field(key)
	return s
}
