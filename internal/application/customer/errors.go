package customer

import "errors"

var (
	ErrImportCustomers   = errors.New("failed to import customers")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrGetCustomerByID   = errors.New("failed to get customer by id")
	ErrInvalidImportID   = errors.New("invalid import id")
	ErrImportNotFound    = errors.New("customer import not found")
	ErrGetImportByID     = errors.New("failed to get customer import by id")
)

// DuplicateEmailMessage is reported on a row whose email already belongs to a
// customer.
const DuplicateEmailMessage = "Customer with this email already exists"
