// Package jsonfile serves ad records from the static JSON data file the
// scrapers and maintenance tooling produce.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"adboard/internal/core/domain"
)

// LoadFile reads the JSON array at path. See Decode.
func LoadFile(path string) ([]domain.AdRecord, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a document of ad records. A document that is not an array
// of objects fails with ErrInvalidDocument. Elements that cannot be decoded
// are skipped and counted.
func Decode(data []byte) ([]domain.AdRecord, int, error) {
	if err := validateDocument(data, nil); err != nil {
		return nil, 0, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	records := make([]domain.AdRecord, 0, len(raw))
	skipped := 0
	for _, elem := range raw {
		var rec domain.AdRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}
