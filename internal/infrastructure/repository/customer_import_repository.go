package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/db/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ domain.ImportBatchStore = (*CustomerImportRepository)(nil)

type CustomerImportRepository struct {
	db *gorm.DB
}

func NewCustomerImportRepository(db *gorm.DB) *CustomerImportRepository {
	return &CustomerImportRepository{db: db}
}

func (r *CustomerImportRepository) Record(ctx context.Context, batch domain.ImportBatch) error {
	failures := batch.Failures
	if failures == nil {
		failures = []domain.ImportFailure{}
	}
	encoded, err := json.Marshal(failures)
	if err != nil {
		return fmt.Errorf("encode import failures: %w", err)
	}

	row := models.CustomerImport{
		ID:            batch.ID,
		Total:         batch.Total,
		ImportedCount: batch.ImportedCount,
		FailedCount:   batch.FailedCount,
		Failures:      datatypes.JSON(encoded),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create customer import: %w", err)
	}
	return nil
}

func (r *CustomerImportRepository) GetByID(ctx context.Context, id string) (*domain.ImportBatch, error) {
	var row models.CustomerImport

	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImportNotFound
		}
		return nil, fmt.Errorf("get customer import by id: %w", err)
	}

	var failures []domain.ImportFailure
	if len(row.Failures) > 0 {
		if err := json.Unmarshal(row.Failures, &failures); err != nil {
			return nil, fmt.Errorf("decode import failures: %w", err)
		}
	}

	return &domain.ImportBatch{
		ID:            row.ID,
		Total:         row.Total,
		ImportedCount: row.ImportedCount,
		FailedCount:   row.FailedCount,
		Failures:      failures,
		CreatedAt:     row.CreatedAt,
	}, nil
}
