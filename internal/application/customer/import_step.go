package customer

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"go.uber.org/zap"
)

type importCustomersStep struct {
	customers  domain.CustomerStore
	identities domain.AuthIdentityStore
	hasher     domain.PasswordHasher
	logger     *zap.Logger
}

// invoke imports rows one by one. A failing row is reported in its result and
// never stops the batch; only cancellation does, returning the rows handled
// so far.
func (s *importCustomersStep) invoke(ctx context.Context, in any) (any, error) {
	rows := in.([]ImportCustomerData)
	results := make([]domain.ImportResult, 0, len(rows))

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := s.importOne(ctx, row)
		if !result.Success {
			s.logger.Warn("import customer failed",
				zap.String("email", result.Email),
				zap.String("reason", result.Error),
			)
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *importCustomersStep) importOne(ctx context.Context, row ImportCustomerData) domain.ImportResult {
	record, err := domain.NewImportRecord(row.FirstName, row.LastName, row.Email, row.CompanyName, row.Phone, row.Password)
	if err != nil {
		return failed(row.Email, err)
	}

	existing, err := s.customers.ListByEmail(ctx, record.Email)
	if err != nil {
		return failed(record.Email, err)
	}
	if len(existing) > 0 {
		return failed(record.Email, errors.New(DuplicateEmailMessage))
	}

	created, err := s.customers.Create(ctx, record.NewCustomer(domain.NewID(domain.CustomerIDPrefix)))
	if errors.Is(err, domain.ErrCustomerExists) {
		return failed(record.Email, errors.New(DuplicateEmailMessage))
	}
	if err != nil {
		return failed(record.Email, err)
	}

	identity, err := s.createIdentity(ctx, created, record.Password)
	if err != nil {
		s.discardCustomer(ctx, created)
		return failed(record.Email, err)
	}

	return domain.ImportResult{
		Success:      true,
		Customer:     &created,
		AuthIdentity: &identity,
		Email:        record.Email,
	}
}

func (s *importCustomersStep) createIdentity(ctx context.Context, c domain.Customer, password string) (domain.AuthIdentity, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("hash password: %w", err)
	}
	return s.identities.Create(ctx, domain.NewEmailPassIdentity(c, hash))
}

// discardCustomer removes a customer whose credentials could not be created
// so the row can be retried.
func (s *importCustomersStep) discardCustomer(ctx context.Context, c domain.Customer) {
	if err := s.customers.Delete(context.WithoutCancel(ctx), c.ID); err != nil {
		s.logger.Error("remove customer without auth identity failed",
			zap.String("customer_id", c.ID),
			zap.String("email", c.Email),
			zap.Error(err),
		)
	}
}

// compensate deletes every customer and auth identity the step created.
// Failures are logged per row and do not stop the cleanup.
func (s *importCustomersStep) compensate(ctx context.Context, out any) error {
	results, _ := out.([]domain.ImportResult)

	for _, result := range results {
		if !result.Success || result.Customer == nil || result.AuthIdentity == nil {
			continue
		}
		if err := s.customers.Delete(ctx, result.Customer.ID); err != nil {
			s.logger.Error("compensation: delete customer failed",
				zap.String("email", result.Email),
				zap.String("customer_id", result.Customer.ID),
				zap.Error(err),
			)
		}
		if err := s.identities.Delete(ctx, []string{result.AuthIdentity.ID}); err != nil {
			s.logger.Error("compensation: delete auth identity failed",
				zap.String("email", result.Email),
				zap.String("auth_identity_id", result.AuthIdentity.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func failed(email string, err error) domain.ImportResult {
	message := err.Error()
	if message == "" {
		message = "Unknown error occurred"
	}
	return domain.ImportResult{Success: false, Error: message, Email: email}
}
