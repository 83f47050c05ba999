package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
)

// CustomerService keeps customer records. Bills only snapshot customer
// name and phone, so this store stays a thin collaborator of the ledger.
type CustomerService struct {
	mu        sync.RWMutex
	customers []entity.Customer
}

// NewCustomerService creates an empty customer store
func NewCustomerService() *CustomerService {
	return &CustomerService{}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Create records a new customer. Phone numbers are unique: bills filter by
// exact phone match, so two records sharing one would alias in listings.
func (s *CustomerService) Create(input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("customer name is required")
	}
	if input.Phone == "" {
		return nil, apperror.NewValidationError("customer phone is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.Phone == input.Phone {
			return nil, apperror.NewAppError(409, "A customer with this phone already exists")
		}
	}

	customer := entity.Customer{
		ID:        uuid.New(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		CreatedAt: time.Now(),
	}
	s.customers = append(s.customers, customer)
	return &customer, nil
}

// List returns all customers, optionally filtered by exact phone match
func (s *CustomerService) List(phone string) []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if phone != "" && c.Phone != phone {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Get returns the customer with the given id
func (s *CustomerService) Get(id uuid.UUID) (*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			customer := s.customers[i]
			return &customer, nil
		}
	}
	return nil, apperror.NewNotFoundError("Customer")
}
