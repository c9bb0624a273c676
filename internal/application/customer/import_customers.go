package customer

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/workflow"
	"go.uber.org/zap"
)

const importCustomersWorkflowName = "import-customers"

type ImportCustomerData struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Password    string `json:"password"`
}

type ImportCustomersInput struct {
	Customers []ImportCustomerData
}

type ImportCustomersOutput struct {
	ImportID  string                `json:"import_id"`
	Imported  int                   `json:"imported"`
	Failed    int                   `json:"failed"`
	Customers []domain.Customer     `json:"customers"`
	Results   []domain.ImportResult `json:"results"`
}

type ImportCustomers interface {
	Execute(ctx context.Context, in ImportCustomersInput) (ImportCustomersOutput, error)
}

type importCustomers struct {
	customers domain.CustomerStore
	workflow  *workflow.Workflow
	logger    *zap.Logger
}

type importOutcome struct {
	importID string
	results  []domain.ImportResult
}

func NewImportCustomers(
	customers domain.CustomerStore,
	identities domain.AuthIdentityStore,
	batches domain.ImportBatchStore,
	hasher domain.PasswordHasher,
	logger *zap.Logger,
) ImportCustomers {
	if logger == nil {
		logger = zap.NewNop()
	}

	step := &importCustomersStep{
		customers:  customers,
		identities: identities,
		hasher:     hasher,
		logger:     logger,
	}
	record := &recordImportStep{batches: batches}

	return &importCustomers{
		customers: customers,
		workflow: workflow.New(importCustomersWorkflowName, logger,
			workflow.Step{
				Name:       "import-customers",
				Invoke:     step.invoke,
				Compensate: step.compensate,
			},
			workflow.Step{
				Name:   "record-import",
				Invoke: record.invoke,
			},
		),
		logger: logger,
	}
}

func (uc *importCustomers) Execute(ctx context.Context, in ImportCustomersInput) (ImportCustomersOutput, error) {
	out, err := uc.workflow.Run(ctx, in.Customers)
	if err != nil {
		uc.logger.Error("import customers workflow failed", zap.Int("rows", len(in.Customers)), zap.Error(err))
		return ImportCustomersOutput{}, fmt.Errorf("%w: %v", ErrImportCustomers, err)
	}
	outcome := out.(importOutcome)

	ids := make([]string, 0, len(outcome.results))
	for _, result := range outcome.results {
		if result.Imported() {
			ids = append(ids, result.Customer.ID)
		}
	}

	return ImportCustomersOutput{
		ImportID:  outcome.importID,
		Imported:  len(ids),
		Failed:    len(outcome.results) - len(ids),
		Customers: uc.loadCustomers(ctx, ids),
		Results:   outcome.results,
	}, nil
}

// loadCustomers re-reads created customers so the response carries stored
// values. A failed read is not fatal: the rows were already imported.
func (uc *importCustomers) loadCustomers(ctx context.Context, ids []string) []domain.Customer {
	if len(ids) == 0 {
		return []domain.Customer{}
	}

	customers, err := uc.customers.ListByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("query imported customers failed", zap.Int("count", len(ids)), zap.Error(err))
		return []domain.Customer{}
	}
	return customers
}

type recordImportStep struct {
	batches domain.ImportBatchStore
}

func (s *recordImportStep) invoke(ctx context.Context, in any) (any, error) {
	results := in.([]domain.ImportResult)

	batch := domain.SummarizeImport(domain.NewID(domain.ImportIDPrefix), results)
	if err := s.batches.Record(ctx, batch); err != nil {
		return nil, fmt.Errorf("record customer import: %w", err)
	}

	return importOutcome{importID: batch.ID, results: results}, nil
}
