package service

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrDuplicateLine      = errors.New("duplicate movie in order")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)
