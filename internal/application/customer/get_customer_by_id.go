package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type GetCustomerByIDInput struct {
	ID string
}

type GetCustomerByIDOutput struct {
	Customer domain.Customer `json:"customer"`
}

type GetCustomerByID interface {
	Execute(ctx context.Context, in GetCustomerByIDInput) (GetCustomerByIDOutput, error)
}

type getCustomerByID struct {
	repo domain.CustomerStore
}

func NewGetCustomerByID(repo domain.CustomerStore) GetCustomerByID {
	return &getCustomerByID{repo: repo}
}

func (uc *getCustomerByID) Execute(ctx context.Context, in GetCustomerByIDInput) (GetCustomerByIDOutput, error) {
	if !domain.ValidID(domain.CustomerIDPrefix, in.ID) {
		return GetCustomerByIDOutput{}, ErrInvalidCustomerID
	}

	c, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return GetCustomerByIDOutput{}, ErrCustomerNotFound
		}
		return GetCustomerByIDOutput{}, fmt.Errorf("%w: %v", ErrGetCustomerByID, err)
	}

	return GetCustomerByIDOutput{Customer: *c}, nil
}
