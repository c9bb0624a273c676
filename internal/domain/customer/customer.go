package customer

import (
	"net/mail"
	"strings"
	"time"
)

const MinPasswordLength = 6

// MetadataForcePasswordChange is set on imported customers so the storefront
// asks for a new password on first login.
const MetadataForcePasswordChange = "force_password_change"

type Customer struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Phone       *string        `json:"phone"`
	CompanyName *string        `json:"company_name"`
	HasAccount  bool           `json:"has_account"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ImportRecord is one validated row of an import batch.
type ImportRecord struct {
	FirstName   string
	LastName    string
	Email       string
	CompanyName string
	Phone       string
	Password    string
}

func NewImportRecord(firstName, lastName, email, companyName, phone, password string) (ImportRecord, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = NormalizeEmail(email)

	if firstName == "" {
		return ImportRecord{}, ErrFirstNameRequired
	}
	if lastName == "" {
		return ImportRecord{}, ErrLastNameRequired
	}
	if !validEmail(email) {
		return ImportRecord{}, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return ImportRecord{}, ErrPasswordTooShort
	}

	return ImportRecord{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		CompanyName: strings.TrimSpace(companyName),
		Phone:       strings.TrimSpace(phone),
		Password:    password,
	}, nil
}

// NewCustomer builds the account-holding customer created for an import row.
func (r ImportRecord) NewCustomer(id string) Customer {
	return Customer{
		ID:          id,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       optional(r.Phone),
		CompanyName: optional(r.CompanyName),
		HasAccount:  true,
		Metadata:    map[string]any{MetadataForcePasswordChange: true},
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
