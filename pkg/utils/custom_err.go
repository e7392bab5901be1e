package utils

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCityNotFound = errors.New("city not found")
	ErrUpstream     = errors.New("mapping provider error")
)
