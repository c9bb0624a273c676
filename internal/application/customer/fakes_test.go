package customer_test

import (
	"context"
	"errors"
	"sync"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type fakeCustomerStore struct {
	mu        sync.Mutex
	byID      map[string]domain.Customer
	order     []string
	createErr error
	deleteErr error
	listErr   error
	deleted   []string
}

func newFakeCustomerStore(existing ...domain.Customer) *fakeCustomerStore {
	s := &fakeCustomerStore{byID: map[string]domain.Customer{}}
	for _, c := range existing {
		s.byID[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	return s
}

func (s *fakeCustomerStore) ListByEmail(ctx context.Context, email string) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Customer
	for _, id := range s.order {
		if c, ok := s.byID[id]; ok && c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCustomerStore) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return domain.Customer{}, s.createErr
	}
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return c, nil
}

func (s *fakeCustomerStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeCustomerStore) ListByIDs(ctx context.Context, ids []string) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCustomerStore) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}
	c, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (s *fakeCustomerStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

type fakeIdentityStore struct {
	identities map[string]domain.AuthIdentity
	createErr  error
	failFor    string
	deleted    []string
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{identities: map[string]domain.AuthIdentity{}}
}

func (s *fakeIdentityStore) Create(ctx context.Context, identity domain.AuthIdentity) (domain.AuthIdentity, error) {
	if s.createErr != nil {
		return domain.AuthIdentity{}, s.createErr
	}
	if s.failFor != "" && identity.ProviderIdentities[0].EntityID == s.failFor {
		return domain.AuthIdentity{}, errors.New("auth identity insert failed")
	}
	s.identities[identity.ID] = identity
	return identity, nil
}

func (s *fakeIdentityStore) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(s.identities, id)
		s.deleted = append(s.deleted, id)
	}
	return nil
}

type fakeBatchStore struct {
	recorded  []domain.ImportBatch
	recordErr error
	getErr    error
	batch     *domain.ImportBatch
}

func (s *fakeBatchStore) Record(ctx context.Context, batch domain.ImportBatch) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recorded = append(s.recorded, batch)
	return nil
}

func (s *fakeBatchStore) GetByID(ctx context.Context, id string) (*domain.ImportBatch, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.batch, nil
}

type fakeHasher struct {
	err error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}
