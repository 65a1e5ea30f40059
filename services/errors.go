package services

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuNotFound     = errors.New("menu not found")
)
