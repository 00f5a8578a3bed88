// Package airports provides the read-only IATA lookup table the calculation
// is handed. The table is built once at startup, from the embedded dataset,
// a remote dataset URL, or Postgres, and shared across requests without
// locking.
package airports

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

//go:embed airports.json
var embeddedDataset []byte

// Store is an immutable IATA code to airport mapping.
type Store struct {
	byCode map[string]domain.Airport
}

// NewStore builds a store from a list of airport records. Codes are expected
// uppercase; later duplicates overwrite earlier ones.
func NewStore(list []domain.Airport) *Store {
	byCode := make(map[string]domain.Airport, len(list))
	for _, a := range list {
		byCode[a.IATA] = a
	}
	return &Store{byCode: byCode}
}

// Find looks up an airport by exact uppercase IATA code.
func (s *Store) Find(code string) (domain.Airport, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// All returns every record ordered by IATA code.
func (s *Store) All() []domain.Airport {
	list := make([]domain.Airport, 0, len(s.byCode))
	for _, a := range s.byCode {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].IATA < list[j].IATA })
	return list
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.byCode)
}

// Embedded parses the compiled-in reference dataset.
func Embedded() ([]domain.Airport, error) {
	var list []domain.Airport
	if err := json.Unmarshal(embeddedDataset, &list); err != nil {
		return nil, fmt.Errorf("parse embedded airport dataset: %w", err)
	}
	return list, nil
}
