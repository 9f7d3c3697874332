package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/residence-registry/internal/domain"
)

// ResidentPayload is the wire form of a resident record. Every field is a
// JSON string, age and birthday included; the original registry clients
// depend on that shape.
type ResidentPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Suffix      string `json:"suffix"`
	Sex         string `json:"sex"`
	Birthday    string `json:"birthday"`
	Age         string `json:"age"`
	PostalCode  string `json:"postalCode"`
	Citizenship string `json:"citizenship"`
	CivilStatus string `json:"civilStatus"`
	Course      string `json:"course"`
	Address     string `json:"address"`
}

// ToDomain parses the wire payload into the strict domain form. It returns
// a non-empty field error map when any value fails to parse or validate.
func (p ResidentPayload) ToDomain() (*domain.Resident, map[string]any) {
	fieldErrs := make(map[string]any)

	required := map[string]string{
		"id":          p.ID,
		"title":       p.Title,
		"name":        p.Name,
		"sex":         p.Sex,
		"birthday":    p.Birthday,
		"age":         p.Age,
		"postalCode":  p.PostalCode,
		"citizenship": p.Citizenship,
		"civilStatus": p.CivilStatus,
		"course":      p.Course,
		"address":     p.Address,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			fieldErrs[field] = "required"
		}
	}

	if p.Title != "" && !domain.ValidLabel(p.Title, domain.TitleLabels) {
		fieldErrs["title"] = "unknown title"
	}
	if p.Suffix != "" && !domain.ValidLabel(p.Suffix, domain.SuffixLabels) {
		fieldErrs["suffix"] = "unknown suffix"
	}
	if p.Sex != "" && !domain.ValidLabel(p.Sex, domain.SexLabels) {
		fieldErrs["sex"] = "unknown sex"
	}
	if p.CivilStatus != "" && !domain.ValidLabel(p.CivilStatus, domain.CivilStatusLabels) {
		fieldErrs["civilStatus"] = "unknown civil status"
	}

	age := 0
	if p.Age != "" {
		parsed, err := strconv.Atoi(p.Age)
		switch {
		case err != nil:
			fieldErrs["age"] = "must be an integer"
		case parsed < 0:
			fieldErrs["age"] = "must not be negative"
		default:
			age = parsed
		}
	}

	var birthday time.Time
	if p.Birthday != "" {
		parsed, err := time.Parse(domain.DateLayout, p.Birthday)
		if err != nil {
			fieldErrs["birthday"] = "must be a date in form " + domain.DateLayout
		} else {
			birthday = parsed
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &domain.Resident{
		ID:          p.ID,
		Title:       p.Title,
		Name:        p.Name,
		Suffix:      p.Suffix,
		Sex:         p.Sex,
		Birthday:    birthday,
		Age:         age,
		PostalCode:  p.PostalCode,
		Citizenship: p.Citizenship,
		CivilStatus: p.CivilStatus,
		Course:      p.Course,
		Address:     p.Address,
	}, nil
}

// FromDomain renders a resident back into its wire form.
func FromDomain(res *domain.Resident) ResidentPayload {
	return ResidentPayload{
		ID:          res.ID,
		Title:       res.Title,
		Name:        res.Name,
		Suffix:      res.Suffix,
		Sex:         res.Sex,
		Birthday:    res.Birthday.Format(domain.DateLayout),
		Age:         strconv.Itoa(res.Age),
		PostalCode:  res.PostalCode,
		Citizenship: res.Citizenship,
		CivilStatus: res.CivilStatus,
		Course:      res.Course,
		Address:     res.Address,
	}
}

// FromDomainList renders a full snapshot.
func FromDomainList(residents []domain.Resident) []ResidentPayload {
	payloads := make([]ResidentPayload, 0, len(residents))
	for i := range residents {
		payloads = append(payloads, FromDomain(&residents[i]))
	}
	return payloads
}

// LoginRequest payload for the optional token exchange.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued role-bearing token.
type LoginResponse struct {
	Role      domain.Role `json:"role"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}
