package repository

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrQuantityOutOfRange = errors.New("quantity out of range")
)
