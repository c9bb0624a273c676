// Package importfile turns CSV or JSON customer files into import records and
// checks them before they are submitted.
package importfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var (
	ErrInvalidCSV    = errors.New("Failed to parse CSV. Please check the format.")
	ErrInvalidJSON   = errors.New("Invalid JSON format")
	ErrNotArray      = errors.New("JSON must be an array of customers")
	ErrNoCustomers   = errors.New("No valid customers to import")
	ErrUnknownFormat = errors.New("unknown import format")
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Record is one customer row as submitted to the import endpoint.
type Record struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Password    string `json:"password"`
}

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

func Parse(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(r)
	case FormatJSON:
		return ParseJSON(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Validate returns one message per problem, numbering rows from 1.
func Validate(records []Record) []string {
	var problems []string
	for i, record := range records {
		row := i + 1
		if strings.TrimSpace(record.FirstName) == "" {
			problems = append(problems, fmt.Sprintf("Row %d: First name is required", row))
		}
		if strings.TrimSpace(record.LastName) == "" {
			problems = append(problems, fmt.Sprintf("Row %d: Last name is required", row))
		}
		if !emailPattern.MatchString(record.Email) {
			problems = append(problems, fmt.Sprintf("Row %d: Invalid email", row))
		}
		if len(record.Password) < minPasswordLength {
			problems = append(problems, fmt.Sprintf("Row %d: Password must be at least %d characters", row, minPasswordLength))
		}
	}
	return problems
}

// SampleRecords is a small batch that passes validation.
func SampleRecords() []Record {
	return []Record{
		{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			CompanyName: "Acme Corp",
			Phone:       "+1234567890",
			Password:    "temppass123",
		},
		{
			FirstName:   "Jane",
			LastName:    "Smith",
			Email:       "jane.smith@example.com",
			CompanyName: "Tech Solutions",
			Phone:       "+1234567891",
			Password:    "temppass456",
		},
	}
}
