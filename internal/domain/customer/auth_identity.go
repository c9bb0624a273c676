package customer

import "time"

const (
	ProviderEmailPass = "emailpass"

	AppMetadataCustomerID    = "customer_id"
	ProviderMetadataPassword = "password"
)

type AuthIdentity struct {
	ID                 string             `json:"id"`
	ProviderIdentities []ProviderIdentity `json:"provider_identities"`
	AppMetadata        map[string]any     `json:"app_metadata"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ProviderIdentity links an auth identity to one login method. The provider
// metadata holds the password hash and is never serialised.
type ProviderIdentity struct {
	ID               string         `json:"id"`
	Provider         string         `json:"provider"`
	EntityID         string         `json:"entity_id"`
	AuthIdentityID   string         `json:"auth_identity_id"`
	ProviderMetadata map[string]any `json:"-"`
}

// NewEmailPassIdentity builds the emailpass identity of a customer from an
// encoded password hash.
func NewEmailPassIdentity(c Customer, passwordHash string) AuthIdentity {
	identityID := NewID(AuthIdentityIDPrefix)
	return AuthIdentity{
		ID: identityID,
		ProviderIdentities: []ProviderIdentity{{
			ID:             NewID(ProviderIdentityIDPrefix),
			Provider:       ProviderEmailPass,
			EntityID:       c.Email,
			AuthIdentityID: identityID,
			ProviderMetadata: map[string]any{
				ProviderMetadataPassword: passwordHash,
			},
		}},
		AppMetadata: map[string]any{AppMetadataCustomerID: c.ID},
	}
}
