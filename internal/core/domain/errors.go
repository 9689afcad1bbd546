package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClosed indicates a component was used after teardown.
	ErrClosed = errors.New("closed")
)

// Fetch failure messages shown to users. They are part of the UI contract.
const (
	serverFallbackMessage = "Problème serveur"
	unreachableMessage    = "Serveur inaccessible. Vérifiez votre connexion."
	requestConfigMessage  = "Erreur de configuration de la requête"
)

// ServerError is returned when the API answered with a non-2xx status.
type ServerError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the server-supplied message field, if any.
	Message string
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = serverFallbackMessage
	}
	return fmt.Sprintf("Erreur %d: %s", e.Status, msg)
}

// UnreachableError is returned when a request was sent but no response arrived.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return unreachableMessage
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// RequestConfigError is returned when a request could not be built or sent.
// Client-side timeouts and malformed response bodies also land here.
type RequestConfigError struct {
	Err error
}

func (e *RequestConfigError) Error() string {
	return requestConfigMessage
}

func (e *RequestConfigError) Unwrap() error {
	return e.Err
}

// ProductNotFoundError is the single failure of a product lookup, whatever the
// underlying cause. Cause is kept for diagnostics only.
type ProductNotFoundError struct {
	ID    int
	Cause error
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Produit %d non trouvé", e.ID)
}

// Unwrap reports ErrNotFound so callers can match with errors.Is.
func (e *ProductNotFoundError) Unwrap() error {
	return ErrNotFound
}
