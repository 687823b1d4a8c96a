package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/hash"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type AccountService struct {
	Repo *repo.GormRepo
}

func accountErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fail(ErrDuplicate, "username already taken")
	}
	return storeErr(err, "Customer account")
}

func hashPassword(password string) (string, error) {
	h, err := hash.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fail(ErrValidation, "password must be at most 72 bytes")
	}
	return h, err
}

func (s *AccountService) CreateAccount(ctx context.Context, req transport.CustomerAccountRequest) (*models.CustomerAccount, error) {
	if err := requireFields(
		field{"username", req.Username != nil},
		field{"password", req.Password != nil},
		field{"customer_id", req.CustomerID != nil},
	); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(*req.Password)
	if err != nil {
		return nil, err
	}

	a := &models.CustomerAccount{
		Username:     *req.Username,
		PasswordHash: passwordHash,
		CustomerID:   *req.CustomerID,
	}
	if err := s.Repo.CreateAccount(ctx, a); err != nil {
		return nil, accountErr(err)
	}
	return a, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id uint) (*models.CustomerAccount, error) {
	a, err := s.Repo.GetAccount(ctx, id)
	if err != nil {
		return nil, accountErr(err)
	}
	return a, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id uint, req transport.CustomerAccountRequest) (*models.CustomerAccount, error) {
	if err := requireFields(
		field{"username", req.Username != nil},
		field{"password", req.Password != nil},
	); err != nil {
		return nil, err
	}

	if req.CustomerID != nil && *req.CustomerID == 0 {
		return nil, fail(ErrValidation, "customer_id must be positive")
	}

	passwordHash, err := hashPassword(*req.Password)
	if err != nil {
		return nil, err
	}

	a := &models.CustomerAccount{ID: id, Username: *req.Username, PasswordHash: passwordHash}
	if req.CustomerID != nil {
		a.CustomerID = *req.CustomerID
	}
	if err := s.Repo.UpdateAccount(ctx, a); err != nil {
		return nil, accountErr(err)
	}
	return a, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	return accountErr(s.Repo.DeleteAccount(ctx, id))
}
