package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-admin/internal/models"
)

// APIError is the error body of the hotel API: a human message plus an
// optional field→message map.
type APIError struct {
	Status int `json:"-"`
	models.ErrorBody
}

func (e *APIError) Error() string  { return e.Mensaje }
func (e *APIError) GetStatus() int { return e.Status }

func init() {
	huma.NewError = newAPIError
}

func newAPIError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity && msg == "validation failed" {
		msg = "Datos inválidos"
	}

	apiErr := &APIError{Status: status, ErrorBody: models.ErrorBody{Mensaje: msg}}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detail *huma.ErrorDetail
		if errors.As(err, &detail) {
			if apiErr.Detalles == nil {
				apiErr.Detalles = map[string]string{}
			}
			field := strings.TrimPrefix(detail.Location, "body.")
			if field == "" {
				field = "body"
			}
			apiErr.Detalles[field] = detail.Message
			continue
		}
		apiErr.Message = err.Error()
	}
	return apiErr
}

// fieldError builds a 422 for a single request field.
func fieldError(field, message string) error {
	return huma.Error422UnprocessableEntity("Datos inválidos", &huma.ErrorDetail{
		Location: "body." + field,
		Message:  message,
	})
}
