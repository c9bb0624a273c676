package customer

import "context"

type CustomerStore interface {
	ListByEmail(ctx context.Context, email string) ([]Customer, error)
	Create(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id string) error
	ListByIDs(ctx context.Context, ids []string) ([]Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
}

type AuthIdentityStore interface {
	Create(ctx context.Context, identity AuthIdentity) (AuthIdentity, error)
	Delete(ctx context.Context, ids []string) error
}

type ImportBatchStore interface {
	Record(ctx context.Context, batch ImportBatch) error
	GetByID(ctx context.Context, id string) (*ImportBatch, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}
