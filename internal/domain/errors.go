package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrMovieAlreadyExists = errors.New("movie already exists with the same name and release date")
	ErrInvalidInput       = errors.New("invalid input")
)
