package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
)

// ErrTransport wraps every failure that happened before a response arrived.
var ErrTransport = errors.New("transport failure")

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status int
	Method string
	Path   string
	models.ErrorBody
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if text := e.text(); text != "" {
		msg += ": " + text
	}
	return msg
}

// text is the server-provided message: the detalles entries sorted by field
// and joined by newline, else mensaje, else message.
func (e *APIError) text() string {
	if len(e.Detalles) > 0 {
		fields := lo.Keys(e.Detalles)
		sort.Strings(fields)
		return strings.Join(lo.Map(fields, func(f string, _ int) string { return e.Detalles[f] }), "\n")
	}
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return e.Message
}

type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindValidation
	KindConflict
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	}
	return "unknown"
}

func Classify(err error) Kind {
	if errors.Is(err, ErrTransport) {
		return KindTransport
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return KindUnknown
	}
	switch {
	case apiErr.Status == http.StatusConflict:
		return KindConflict
	case apiErr.Status >= 500:
		return KindServer
	case apiErr.Status >= 400:
		return KindValidation
	}
	return KindUnknown
}

// UserMessage picks what to show a person for err: the server message when
// err is an *APIError that carries one, fallback otherwise.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if text := apiErr.text(); text != "" {
			return text
		}
	}
	return fallback
}

func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
