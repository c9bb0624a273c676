package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type GetImportByIDInput struct {
	ID string
}

type ImportFailureOutput struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type GetImportByIDOutput struct {
	ID        string                `json:"id"`
	Total     int64                 `json:"total"`
	Imported  int64                 `json:"imported"`
	Failed    int64                 `json:"failed"`
	Failures  []ImportFailureOutput `json:"failures"`
	CreatedAt time.Time             `json:"created_at"`
}

type GetImportByID interface {
	Execute(ctx context.Context, in GetImportByIDInput) (GetImportByIDOutput, error)
}

type getImportByID struct {
	repo domain.ImportBatchStore
}

func NewGetImportByID(repo domain.ImportBatchStore) GetImportByID {
	return &getImportByID{repo: repo}
}

func (uc *getImportByID) Execute(ctx context.Context, in GetImportByIDInput) (GetImportByIDOutput, error) {
	if !domain.ValidID(domain.ImportIDPrefix, in.ID) {
		return GetImportByIDOutput{}, ErrInvalidImportID
	}

	batch, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrImportNotFound) {
			return GetImportByIDOutput{}, ErrImportNotFound
		}
		return GetImportByIDOutput{}, fmt.Errorf("%w: %v", ErrGetImportByID, err)
	}

	failures := make([]ImportFailureOutput, 0, len(batch.Failures))
	for _, failure := range batch.Failures {
		failures = append(failures, ImportFailureOutput{
			Email:  failure.Email,
			Reason: failure.Reason,
		})
	}

	return GetImportByIDOutput{
		ID:        batch.ID,
		Total:     batch.Total,
		Imported:  batch.ImportedCount,
		Failed:    batch.FailedCount,
		Failures:  failures,
		CreatedAt: batch.CreatedAt,
	}, nil
}
