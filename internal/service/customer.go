package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"crmapi/internal/dto"
	"crmapi/internal/repository"
	"crmapi/internal/result"
)

// internalErrorMessage is the opaque text carried by failure envelopes for
// unexpected errors. The underlying error is logged, never exposed.
const internalErrorMessage = "internal server error"

// CustomerService defines the use cases for handling customers. Every
// operation returns exactly one OperationResult: anticipated failures
// (not-found, conflict) are in-band, unexpected repository errors are logged
// and converted to an internal-failure envelope.
type CustomerService interface {
	// List returns all customers.
	List(ctx context.Context) result.OperationResult[[]dto.Customer]

	// Get returns a single customer by its identity.
	Get(ctx context.Context, id int) result.OperationResult[dto.Customer]

	// Create stores a new customer after checking that no other customer
	// carries the same name.
	Create(ctx context.Context, in dto.CustomerCreate) result.OperationResult[dto.Customer]

	// Update merges the input fields onto the stored customer.
	Update(ctx context.Context, id int, in dto.CustomerUpdate) result.OperationResult[dto.Customer]

	// Delete removes the customer and, first, every post it owns.
	Delete(ctx context.Context, id int) result.OperationResult[bool]
}

// customerService is a concrete implementation of CustomerService.
type customerService struct {
	customers repository.CustomerRepository
	log       zerolog.Logger
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(customers repository.CustomerRepository, log zerolog.Logger) CustomerService {
	return &customerService{customers: customers, log: log}
}

func customerNotFoundMsg(id int) string {
	return fmt.Sprintf("Customer with ID %d not found.", id)
}

func (s *customerService) List(ctx context.Context) result.OperationResult[[]dto.Customer] {
	customers, err := s.customers.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list customers failed")
		return result.Fail[[]dto.Customer](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.CustomersFromModel(customers))
}

func (s *customerService) Get(ctx context.Context, id int) result.OperationResult[dto.Customer] {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[dto.Customer](customerNotFoundMsg(id))
		}
		s.log.Error().Err(err).Int("customer_id", id).Msg("get customer failed")
		return result.Fail[dto.Customer](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.CustomerFromModel(customer))
}

func (s *customerService) Create(ctx context.Context, in dto.CustomerCreate) result.OperationResult[dto.Customer] {
	// Uniqueness is checked before the insert. The two steps are not
	// isolated from concurrent writers; the unique index on customers.name
	// is the authoritative backstop.
	_, err := s.customers.FindByName(ctx, in.Name)
	if err == nil {
		return result.Conflict[dto.Customer](fmt.Sprintf("A customer with the name '%s' already exists.", in.Name))
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.log.Error().Err(err).Str("name", in.Name).Msg("customer name lookup failed")
		return result.Fail[dto.Customer](internalErrorMessage, http.StatusInternalServerError)
	}

	entity := in.ToModel()
	created, err := s.customers.Create(ctx, &entity)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("create customer failed")
		return result.Fail[dto.Customer](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.CustomerFromModel(created))
}

func (s *customerService) Update(ctx context.Context, id int, in dto.CustomerUpdate) result.OperationResult[dto.Customer] {
	original, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[dto.Customer](customerNotFoundMsg(id))
		}
		s.log.Error().Err(err).Int("customer_id", id).Msg("update customer lookup failed")
		return result.Fail[dto.Customer](internalErrorMessage, http.StatusInternalServerError)
	}

	edited := *original
	in.MergeInto(&edited)

	updated, _, err := s.customers.Update(ctx, &edited, original)
	if err != nil {
		s.log.Error().Err(err).Int("customer_id", id).Msg("update customer failed")
		return result.Fail[dto.Customer](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.CustomerFromModel(updated))
}

func (s *customerService) Delete(ctx context.Context, id int) result.OperationResult[bool] {
	customer, err := s.customers.FindByIDWithPosts(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[bool](customerNotFoundMsg(id))
		}
		s.log.Error().Err(err).Int("customer_id", id).Msg("delete customer lookup failed")
		return result.Fail[bool](internalErrorMessage, http.StatusInternalServerError)
	}

	// Posts go first to respect the foreign key relationship.
	if len(customer.Posts) > 0 {
		if err := s.customers.RemoveRange(ctx, customer.Posts); err != nil {
			s.log.Error().Err(err).Int("customer_id", id).Msg("cascade delete posts failed")
			return result.Fail[bool](internalErrorMessage, http.StatusInternalServerError)
		}
	}

	if err := s.customers.Remove(ctx, customer); err != nil {
		s.log.Error().Err(err).Int("customer_id", id).Msg("delete customer failed")
		return result.Fail[bool](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(true)
}
