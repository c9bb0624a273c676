package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

var _ domain.AuthIdentityStore = (*AuthIdentityRepository)(nil)

type AuthIdentityRepository struct {
	pool *pgxpool.Pool
}

func NewAuthIdentityRepository(pool *pgxpool.Pool) *AuthIdentityRepository {
	return &AuthIdentityRepository{pool: pool}
}

const insertAuthIdentitySQL = `
INSERT INTO auth_identity (id, app_metadata, created_at, updated_at)
VALUES ($1, $2, NOW(), NOW())
RETURNING created_at, updated_at
`

const insertProviderIdentitySQL = `
INSERT INTO provider_identity (id, entity_id, provider, auth_identity_id, provider_metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
`

// Create stores an auth identity and its provider identities in one
// transaction.
func (r *AuthIdentityRepository) Create(ctx context.Context, identity domain.AuthIdentity) (domain.AuthIdentity, error) {
	appMetadata, err := json.Marshal(identity.AppMetadata)
	if err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("encode app metadata: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, insertAuthIdentitySQL, identity.ID, appMetadata).
		Scan(&identity.CreatedAt, &identity.UpdatedAt); err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("insert auth identity: %w", err)
	}

	batch := &pgx.Batch{}
	for _, provider := range identity.ProviderIdentities {
		providerMetadata, err := json.Marshal(provider.ProviderMetadata)
		if err != nil {
			return domain.AuthIdentity{}, fmt.Errorf("encode provider metadata: %w", err)
		}
		batch.Queue(insertProviderIdentitySQL,
			provider.ID,
			provider.EntityID,
			provider.Provider,
			identity.ID,
			providerMetadata,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for _, provider := range identity.ProviderIdentities {
		if _, err := results.Exec(); err != nil {
			results.Close()
			if isUniqueViolation(err) {
				return domain.AuthIdentity{}, fmt.Errorf("%s identity for %s already exists", provider.Provider, provider.EntityID)
			}
			return domain.AuthIdentity{}, fmt.Errorf("insert provider identity: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("close provider identity batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.AuthIdentity{}, fmt.Errorf("commit auth identity: %w", err)
	}

	return identity, nil
}

// Delete removes auth identities together with their provider identities.
func (r *AuthIdentityRepository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM provider_identity WHERE auth_identity_id = ANY($1)", ids); err != nil {
		return fmt.Errorf("delete provider identities: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM auth_identity WHERE id = ANY($1)", ids); err != nil {
		return fmt.Errorf("delete auth identities: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit auth identity delete: %w", err)
	}
	return nil
}
