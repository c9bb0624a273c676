package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is unique by email among live, account-holding rows; guest rows
// may share an email.
type Customer struct {
	ID          string            `gorm:"type:text;primaryKey"`
	Email       string            `gorm:"type:text;not null;uniqueIndex:idx_customer_email_has_account,where:deleted_at IS NULL AND has_account = true"`
	FirstName   string            `gorm:"type:text;not null"`
	LastName    string            `gorm:"type:text;not null"`
	Phone       *string           `gorm:"type:text"`
	CompanyName *string           `gorm:"type:text"`
	HasAccount  bool              `gorm:"not null;default:false"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Customer) TableName() string {
	return "customer"
}

type CustomerImport struct {
	ID            string         `gorm:"type:text;primaryKey"`
	Total         int64          `gorm:"not null;default:0"`
	ImportedCount int64          `gorm:"not null;default:0"`
	FailedCount   int64          `gorm:"not null;default:0"`
	Failures      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (CustomerImport) TableName() string {
	return "customer_import"
}
