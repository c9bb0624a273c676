package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

var _ domain.CustomerStore = (*CustomerRepository)(nil)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) ListByEmail(ctx context.Context, email string) ([]domain.Customer, error) {
	var rows []models.Customer
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers by email: %w", err)
	}
	return toDomainCustomers(rows), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	row := models.Customer{
		ID:          c.ID,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		HasAccount:  c.HasAccount,
		Metadata:    c.Metadata,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Customer{}, domain.ErrCustomerExists
		}
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return toDomainCustomer(row), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}

func (r *CustomerRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return []domain.Customer{}, nil
	}

	var rows []models.Customer
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers by id: %w", err)
	}
	return toDomainCustomers(rows), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var row models.Customer

	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer by id: %w", err)
	}

	c := toDomainCustomer(row)
	return &c, nil
}

func toDomainCustomers(rows []models.Customer) []domain.Customer {
	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, toDomainCustomer(row))
	}
	return customers
}

func toDomainCustomer(row models.Customer) domain.Customer {
	return domain.Customer{
		ID:          row.ID,
		Email:       row.Email,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Phone:       row.Phone,
		CompanyName: row.CompanyName,
		HasAccount:  row.HasAccount,
		Metadata:    row.Metadata,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
