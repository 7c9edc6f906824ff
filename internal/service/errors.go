package service

import "errors"

var (
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)
