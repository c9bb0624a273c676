package importfile

import (
	"bytes"
	"encoding/json"
	"io"
)

// ParseJSON reads an array of customer objects.
func ParseJSON(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrNotArray
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, ErrInvalidJSON
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
