// Package server exposes the search composition engine over HTTP: catalog
// proxying and one search endpoint covering the three backend modes.
package server

import (
	"errors"
	"net/http"

	"github.com/HardMax71/ResuMariner-sub001/internal/client"
	"github.com/HardMax71/ResuMariner-sub001/internal/query"
)

// HTTPStatus maps the error taxonomy to response codes: local validation is
// the caller's fault, backend errors pass through as bad gateway, transport
// failures as gateway timeout.
func HTTPStatus(err error) int {
	var validationErr *query.ValidationError
	var backendErr *client.BackendError
	var networkErr *client.NetworkError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &backendErr):
		return http.StatusBadGateway
	case errors.As(err, &networkErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
