package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCompanyMissing       = errors.New("company details are not set")
	ErrCustomerMissing      = errors.New("no customer selected")
	ErrNoItems              = errors.New("invoice has no items")
	ErrCustomerEmailMissing = errors.New("customer has no email address")
	ErrArchiveDisabled      = errors.New("invoice archive storage is not configured")
	ErrStoreBusy            = errors.New("record is locked by another writer")
	ErrInvalidRecord        = errors.New("stored record is malformed")
	ErrValidation           = errors.New("validation failed")
)
