package service

import (
	"strings"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/recap"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

const (
	maxNameLen = 64
	maxScore   = 99
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// NormalizePosition upper-cases and trims a position code.
func NormalizePosition(pos string) string {
	return strings.ToUpper(strings.TrimSpace(pos))
}

// IsValidPosition accepts C, LW, RW, LD, RD and G in any case.
func IsValidPosition(pos string) bool {
	return recap.IsKnownPosition(pos)
}

// IsValidRecapDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsValidRecapDate(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != len(recap.DateLayout) {
		return false
	}
	_, err := time.Parse(recap.DateLayout, s)
	return err == nil
}

// validateName trims name and appends a field error when it is empty or too long.
func validateName(field, name string, ferrs []FieldError) (string, []FieldError) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		ferrs = append(ferrs, FieldError{Field: field, Message: "must not be empty"})
	case len([]rune(name)) > maxNameLen:
		ferrs = append(ferrs, FieldError{Field: field, Message: "length must be <= 64"})
	}
	return name, ferrs
}

func requirePositiveID(field string, id int64, ferrs []FieldError) []FieldError {
	if id <= 0 {
		ferrs = append(ferrs, FieldError{Field: field, Message: "must be > 0"})
	}
	return ferrs
}

func requireNonNegative(field string, v int, ferrs []FieldError) []FieldError {
	if v < 0 {
		ferrs = append(ferrs, FieldError{Field: field, Message: "must be >= 0"})
	}
	return ferrs
}
