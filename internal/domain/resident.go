package domain

import "time"

// DateLayout is the calendar-date form used for birthdays on the wire.
const DateLayout = "2006-01-02"

// Resident is the single registry entity. IDs are caller-chosen and
// immutable once created; every other field is replaced wholesale on update.
type Resident struct {
	ID          string
	Title       string
	Name        string
	Suffix      string
	Sex         string
	Birthday    time.Time
	Age         int
	PostalCode  string
	Citizenship string
	CivilStatus string
	Course      string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label sets match the registration form's option lists. They are validated
// as labels at the service boundary, not free text.
var (
	TitleLabels       = []string{"Mr.", "Mrs.", "Ms."}
	SuffixLabels      = []string{"None", "Jr.", "Sr.", "III"}
	SexLabels         = []string{"Male", "Female", "BiSexual"}
	CivilStatusLabels = []string{"Single", "Married", "Complicated", "Separated"}
)

// ValidLabel reports whether value is one of the allowed labels.
func ValidLabel(value string, allowed []string) bool {
	for _, label := range allowed {
		if value == label {
			return true
		}
	}
	return false
}
