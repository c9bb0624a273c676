package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuthIdentity and ProviderIdentity only describe the schema; rows are
// written through pgx by the auth identity repository.
type AuthIdentity struct {
	ID                 string             `gorm:"type:text;primaryKey"`
	AppMetadata        datatypes.JSONMap  `gorm:"type:jsonb"`
	ProviderIdentities []ProviderIdentity `gorm:"foreignKey:AuthIdentityID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (AuthIdentity) TableName() string {
	return "auth_identity"
}

type ProviderIdentity struct {
	ID               string            `gorm:"type:text;primaryKey"`
	EntityID         string            `gorm:"type:text;not null;uniqueIndex:idx_provider_identity_entity_provider,where:deleted_at IS NULL"`
	Provider         string            `gorm:"type:text;not null;uniqueIndex:idx_provider_identity_entity_provider,where:deleted_at IS NULL"`
	AuthIdentityID   string            `gorm:"type:text;not null;index"`
	UserMetadata     datatypes.JSONMap `gorm:"type:jsonb"`
	ProviderMetadata datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (ProviderIdentity) TableName() string {
	return "provider_identity"
}
