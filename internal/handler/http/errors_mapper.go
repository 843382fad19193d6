package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/service"
	"github.com/MKhiriev/go-clinic-sync/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMissingConfirmation: http.StatusPreconditionRequired,
	ErrInvalidBody:         http.StatusBadRequest,
	ErrInvalidLimit:        http.StatusBadRequest,

	service.ErrReadOnly:            http.StatusServiceUnavailable,
	service.ErrBackendUnavailable:  http.StatusServiceUnavailable,
	service.ErrPostConditionFailed: http.StatusBadGateway,
	service.ErrRestoreFailed:       http.StatusInternalServerError,

	adapter.ErrCloudUnavailable: http.StatusServiceUnavailable,
	adapter.ErrCloudDisabled:    http.StatusServiceUnavailable,
	adapter.ErrCloudRejected:    http.StatusUnprocessableEntity,
	adapter.ErrCloudNotFound:    http.StatusNotFound,

	store.ErrUnknownTable:    http.StatusNotFound,
	store.ErrRecordNotFound:  http.StatusNotFound,
	store.ErrEntryNotFound:   http.StatusNotFound,
	store.ErrRecordExists:    http.StatusConflict,
	store.ErrInvalidMutation: http.StatusBadRequest,
	store.ErrLedgerWrite:     http.StatusInternalServerError,
	store.ErrLedgerRead:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusPriority resolves errors that wrap several mapped sentinels, such
// as a failed restore joined to a cloud error.
var statusPriority = []error{
	service.ErrRestoreFailed,
	ErrMissingConfirmation,
}

func statusFromError(err error) int {
	for _, target := range statusPriority {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
