package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                   http.StatusBadRequest,
	service.ErrValidationNoUserID:                    http.StatusBadRequest,
	service.ErrValidationNoRecordID:                  http.StatusBadRequest,
	validators.ErrInvalidEntity:                      http.StatusBadRequest,
	service.ErrWrongCredentials:                      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:               http.StatusUnauthorized,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusForbidden,
	service.ErrTokenCreationFailed:                   http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorText is the response body sent for err. Internal failures never echo
// their cause to the caller.
func errorText(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
