package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/errs"
)

func TestTextResponderSuccessOmitsEmptyData(t *testing.T) {
	n := &recordingNotifier{}
	rr := httptest.NewRecorder()

	TextResponder{Notifier: n}.Success(rr, validToken, Reply{Message: "Community Deleted"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"access_token":"AccessToken","message":"Community Deleted","refresh_token":"RefreshToken","status_code":200}`+"\n", rr.Body.String())
	assert.Empty(t, n.all())
}

func TestTextResponderFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
		alert  string
	}{
		{
			name:   "missing field",
			err:    errs.MissingField("name", "email"),
			status: http.StatusBadRequest,
			body:   "Bad Request: missing required field(s): name, email",
			alert:  "http400: bad request: missing required field(s): name, email",
		},
		{
			name:   "not found",
			err:    errs.NotFound("community TestCommunity not found"),
			status: http.StatusBadRequest,
			body:   "Bad Request: community TestCommunity not found",
			alert:  "http400: bad request: community TestCommunity not found",
		},
		{
			name:   "not an admin",
			err:    errs.Unauthorized("Testemail@gmail.com is not an admin of TestCommunity"),
			status: http.StatusUnauthorized,
			body:   "UnAuthorized: Testemail@gmail.com is not an admin of TestCommunity",
			alert:  "http401: UnAuthorized: Testemail@gmail.com is not an admin of TestCommunity",
		},
		{
			name:   "store failure",
			err:    errs.Store("failed to add meeting", databases.ErrAlreadyExists),
			status: http.StatusInternalServerError,
			body:   "Internal Server Error: failed to add meeting",
			alert:  "Internal Server Error: failed to add meeting.",
		},
		{
			name:   "wrapped",
			err:    fmt.Errorf("outer: %w", errs.BadRequest("function must be 0 or 1")),
			status: http.StatusBadRequest,
			body:   "Bad Request: function must be 0 or 1",
			alert:  "http400: bad request: function must be 0 or 1",
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   "Internal Server Error: unexpected error",
			alert:  "Internal Server Error: unexpected error.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			rr := httptest.NewRecorder()

			TextResponder{Notifier: n}.Failure(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, []string{tt.alert}, n.all())
		})
	}
}

func TestTextResponderWithoutNotifier(t *testing.T) {
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		TextResponder{}.Failure(rr, errs.BadRequest("nope"))
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthCheckHandler(t *testing.T) {
	rr := httptest.NewRecorder()

	HealthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"alive":true}`, rr.Body.String())
}

var _ Responder = TextResponder{}
