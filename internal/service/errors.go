package service

import (
	"errors"
	"fmt"
)

// Errors returned by the cart, queue, stock coordinator and catalog.
var (
	ErrNotFound         = errors.New("not found")
	ErrOutOfStock       = errors.New("out of stock")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrEmptyQueue       = errors.New("no orders in queue")
	ErrNoWaitingOrder   = errors.New("no waiting order in queue")
	ErrOrderInProgress  = errors.New("an order is already being prepared")
	ErrNoPreparingOrder = errors.New("no order is being prepared")
	ErrIndexOutOfRange  = errors.New("cart index out of range")
	ErrValidation       = errors.New("invalid input")
	ErrDuplicateName    = errors.New("name already exists")
)

// OutOfStockError names the first item or add-on found with no stock.
// It matches ErrOutOfStock under errors.Is.
type OutOfStockError struct {
	Name string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%q is out of stock", e.Name)
}

func (e *OutOfStockError) Unwrap() error { return ErrOutOfStock }
