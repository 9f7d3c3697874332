package client

import (
	"strings"

	"github.com/spec-kit/residence-registry/internal/api/dto"
)

// Filter keeps the records where the lowercased term is a substring of any
// single field's string form. An empty term matches everything. The match
// is substring, not token or fuzzy, and runs over the full cached list.
func Filter(records []dto.ResidentPayload, term string) []dto.ResidentPayload {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)

	matched := make([]dto.ResidentPayload, 0, len(records))
	for _, record := range records {
		if matchesAnyField(record, needle) {
			matched = append(matched, record)
		}
	}
	return matched
}

func matchesAnyField(record dto.ResidentPayload, needle string) bool {
	fields := []string{
		record.ID,
		record.Title,
		record.Name,
		record.Suffix,
		record.Sex,
		record.Birthday,
		record.Age,
		record.PostalCode,
		record.Citizenship,
		record.CivilStatus,
		record.Course,
		record.Address,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
