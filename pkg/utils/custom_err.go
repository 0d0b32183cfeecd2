package utils

import "errors"

var (
	ErrInvalidSignature   = errors.New("invalid notification signature")
	ErrUnknownOrder       = errors.New("order not found")
	ErrInvalidAmount      = errors.New("invalid gross amount")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyResolved    = errors.New("reconciliation already resolved")
	ErrReconNotFound      = errors.New("reconciliation not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
