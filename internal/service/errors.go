package service

import "errors"

var (
	// ErrMissingFields signals that customerName, customerEmail, or saddleId
	// was not supplied on creation.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidSaddle signals a saddleId that matches no catalog offering.
	ErrInvalidSaddle = errors.New("invalid saddle selection")
)
