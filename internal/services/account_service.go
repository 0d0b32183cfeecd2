package services

import (
	"context"

	"payrecon/internal/models/request_models"
	"payrecon/internal/repositories"
	"payrecon/pkg/utils"
)

type AccountService interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type accountService struct {
	accountRepo repositories.AccountRepository
	jwtSecret   []byte
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtSecret []byte) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
	}
}

func (a *accountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(a.jwtSecret, account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
