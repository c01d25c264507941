package models

import "errors"

var (
	ErrDriverNotFound      = errors.New("driver not found")
	ErrLocationNotReported = errors.New("driver has not reported a location")
	ErrMissingCoordinates  = errors.New("latitude and longitude are required")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
