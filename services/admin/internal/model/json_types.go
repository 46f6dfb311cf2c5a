package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CategoryList is stored as jsonb. Legacy rows hold a single category as a
// bare JSON string; Scan normalizes those to a one-element list.
type CategoryList []string

func (c CategoryList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CategoryList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for CategoryList: %T", value)
	}

	if len(b) == 0 {
		*c = nil
		return nil
	}

	if b[0] == '[' {
		return json.Unmarshal(b, (*[]string)(c))
	}

	var single string
	if err := json.Unmarshal(b, &single); err != nil {
		// Raw text from the legacy importer, not even JSON-quoted
		single = string(b)
	}
	if single == "" {
		*c = nil
		return nil
	}
	*c = CategoryList{single}
	return nil
}

type TranslationEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TranslationsMap is stored as jsonb keyed by language code. No referential
// integrity: entries may name languages no other record uses.
type TranslationsMap map[string]TranslationEntry

func (t TranslationsMap) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]TranslationEntry(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TranslationsMap) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for TranslationsMap: %T", value)
	}

	if len(b) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(b, (*map[string]TranslationEntry)(t))
}
