package customer

import "time"

// MaxStoredFailures caps the failures kept on an import batch record.
const MaxStoredFailures = 100

type ImportResult struct {
	Success      bool          `json:"success"`
	Customer     *Customer     `json:"customer,omitempty"`
	AuthIdentity *AuthIdentity `json:"authIdentity,omitempty"`
	Error        string        `json:"error,omitempty"`
	Email        string        `json:"email"`
}

// Imported reports whether the row produced a customer.
func (r ImportResult) Imported() bool {
	return r.Success && r.Customer != nil
}

type ImportFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type ImportBatch struct {
	ID            string
	Total         int64
	ImportedCount int64
	FailedCount   int64
	Failures      []ImportFailure
	CreatedAt     time.Time
}

// SummarizeImport counts results the way the import endpoint reports them.
func SummarizeImport(id string, results []ImportResult) ImportBatch {
	batch := ImportBatch{ID: id, Total: int64(len(results))}
	for _, result := range results {
		if result.Imported() {
			batch.ImportedCount++
			continue
		}
		if len(batch.Failures) < MaxStoredFailures {
			batch.Failures = append(batch.Failures, ImportFailure{
				Email:  result.Email,
				Reason: result.Error,
			})
		}
	}
	batch.FailedCount = batch.Total - batch.ImportedCount
	return batch
}
