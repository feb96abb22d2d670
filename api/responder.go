package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/models"
	"github.com/biit/biit-api/notify"
)

// Responder turns handler results into http replies
type Responder interface {
	Success(w http.ResponseWriter, auth models.AuthToken, reply Reply)
	Failure(w http.ResponseWriter, err error)
}

// TextResponder writes json success envelopes and plain text errors. Every
// failure sends exactly one alert to the Notifier; successes send none.
type TextResponder struct {
	Notifier notify.Notifier
}

// Success writes the envelope with the rotated token pair
func (t TextResponder) Success(w http.ResponseWriter, auth models.AuthToken, reply Reply) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(models.Response{
		AccessToken:  auth.AccessToken,
		Data:         reply.Data,
		Message:      reply.Message,
		RefreshToken: auth.RefreshToken,
		StatusCode:   http.StatusOK,
	})
	if err != nil {
		zap.S().Errorw("failed to write response", "error", err)
	}
}

// Failure writes the error reply and raises the alert
func (t TextResponder) Failure(w http.ResponseWriter, err error) {
	e := errs.From(err)
	body, alert := describe(e)

	zap.S().With("error", err).Errorw("request failed", "status", e.Status(), "kind", e.Kind.String())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(e.Status())
	_, _ = io.WriteString(w, body)

	if t.Notifier != nil {
		t.Notifier.Notify(alert)
	}
}

// describe returns the reply body and the alert line for an error
func describe(e *errs.Error) (string, string) {
	switch e.Status() {
	case http.StatusBadRequest:
		return "Bad Request: " + e.Description, "http400: bad request: " + e.Description
	case http.StatusUnauthorized:
		body := "UnAuthorized: " + e.Description
		return body, "http401: " + body
	case http.StatusMethodNotAllowed:
		return "Method not allowed", fmt.Sprintf("The HTTP method %s you just sent is not supported", e.Description)
	default:
		return "Internal Server Error: " + e.Description, fmt.Sprintf("Internal Server Error: %s.", e.Description)
	}
}
