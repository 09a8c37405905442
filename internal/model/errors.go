package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("invalid state")
	ErrConflict            = errors.New("concurrent modification conflict")
	ErrStorageFailure      = errors.New("storage failure")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrReferralCodeNotFound = fmt.Errorf("referral code %w", ErrNotFound)
	ErrWithdrawalNotFound   = fmt.Errorf("withdrawal %w", ErrNotFound)
	ErrAccountNotFound      = fmt.Errorf("payment account %w", ErrNotFound)
)

var (
	ErrEmptyReferralCode  = errors.New("empty referral code")
	ErrInvalidDestination = errors.New("invalid withdrawal destination")
	ErrInvalidAccountType = errors.New("invalid payment account type")
)
