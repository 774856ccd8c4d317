package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrStorageNotReady = errors.New("storage schema is not migrated")
	ErrCatalogMissing  = errors.New("menu catalog is not available")
	ErrCatalogInvalid  = errors.New("menu catalog is invalid")
	ErrUnknownOption   = errors.New("menu option is unknown")
	ErrSystemNotReady  = errors.New("system is not ready")
	ErrSystemStarted   = errors.New("system is already started")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business errors.
	ErrEmptyOrder           = errors.New("order has no base selections")
	ErrConfirmationRequired = errors.New("order is outside regular hours and needs confirmation")
	ErrMessageComposition   = errors.New("order message could not be composed")
	ErrInvalidPhone         = errors.New("messaging phone number is not valid")
	ErrLinkOpen             = errors.New("outbound link could not be opened")
)
