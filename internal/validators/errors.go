package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidEntity wraps every field-level failure so callers can
	// match malformed payloads with a single errors.Is check.
	ErrInvalidEntity = errors.New("invalid entity")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyType          = errors.New("type is required")
	ErrEmptyCategory      = errors.New("category is required")
	ErrNegativeSize       = errors.New("size must not be negative")
	ErrEmptyEncryptedData = errors.New("encryptedData is required")
	ErrInvalidIV          = errors.New("iv must be 16 hex-encoded bytes")
	ErrInvalidSalt        = errors.New("salt must be 16 hex-encoded bytes")
	ErrEmptyValue         = errors.New("value is required")
	ErrEmptyUnit          = errors.New("unit is required")
	ErrEmptyTimestamp     = errors.New("timestamp is required")
	ErrEmptyMedicineName  = errors.New("medicineName is required")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email is malformed")
	ErrShortPassword      = errors.New("password is too short")
)
