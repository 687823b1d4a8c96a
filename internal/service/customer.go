package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/events"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type CustomerService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func customerErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fail(ErrDuplicate, "email already registered")
	}
	return storeErr(err, "Customer")
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CustomerRequest) (*models.Customer, error) {
	if err := requireFields(
		field{"name", req.Name != nil},
		field{"email", req.Email != nil},
		field{"phone", req.Phone != nil},
	); err != nil {
		return nil, err
	}

	c := &models.Customer{Name: *req.Name, Email: *req.Email, Phone: *req.Phone}
	if err := s.Repo.CreateCustomer(ctx, c); err != nil {
		return nil, customerErr(err)
	}
	return c, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	c, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, customerErr(err)
	}
	return c, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.ListCustomers(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, req transport.CustomerRequest) (*models.Customer, error) {
	if err := requireFields(
		field{"name", req.Name != nil},
		field{"email", req.Email != nil},
		field{"phone", req.Phone != nil},
	); err != nil {
		return nil, err
	}

	c := &models.Customer{ID: id, Name: *req.Name, Email: *req.Email, Phone: *req.Phone}
	if err := s.Repo.UpdateCustomer(ctx, c); err != nil {
		return nil, customerErr(err)
	}
	return c, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCustomer(ctx, id); err != nil {
		return customerErr(err)
	}
	publish(ctx, s.Events, events.New(events.CustomerDeleted, id, nil))
	return nil
}
