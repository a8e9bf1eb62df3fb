package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrConflict          = errors.New("conflict")           // 400, uniqueness violation
	ErrInsufficientStock = errors.New("insufficient stock") // 400
	ErrInvalidCoupon     = errors.New("invalid coupon")     // 400
	ErrUnauthorized      = errors.New("unauthorized")       // 401
)

// Record identifiers are opaque uuid strings; anything else is rejected
// before touching the store.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
