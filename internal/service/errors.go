package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrRemoteUnavailable      = errors.New("remote store unavailable")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoUserID                    = errors.New("no owner ID for entity was given")
	ErrValidationNoRecordID                  = errors.New("missing or malformed record ID")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to another user's data")
)
