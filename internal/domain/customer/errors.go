package customer

import "errors"

var (
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrCustomerExists    = errors.New("customer with this email already exists")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrImportNotFound    = errors.New("customer import not found")
)
