package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/identity/mocks"
	"github.com/biit/biit-api/models"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

var validToken = models.AuthToken{AccessToken: "AccessToken", RefreshToken: "RefreshToken"}

func newPipeline(refresher *mocks.TokenRefresher, n *recordingNotifier) Pipeline {
	return Pipeline{
		Gate:      AuthGate{Refresher: refresher},
		Responder: TextResponder{Notifier: n},
	}
}

func TestValidateFieldsNamesAllMissing(t *testing.T) {
	req := bodyRequest(t, `{"name":"TestCommunity","mpm":""}`)

	err := ValidateFields(req, Body, []string{"name", "mpm", "meettype"})

	assert.EqualError(t, err, "missing field: missing required field(s): mpm, meettype")
	assert.NoError(t, ValidateFields(req, Body, []string{"name"}))
	assert.NoError(t, ValidateFields(req, Body, nil))
}

func TestAuthGateMissingToken(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	req := bodyRequest(t, `{"name":"TestCommunity"}`)

	_, err := AuthGate{Refresher: refresher}.Authenticate(req.Context(), req, Body)

	var e *errs.Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, errs.KindMissingField, e.Kind)
	refresher.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestAuthGateRefreshFails(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	refresher.On("Refresh", mock.Anything, "stale").Return(models.AuthToken{})
	req := bodyRequest(t, `{"token":"stale"}`)

	_, err := AuthGate{Refresher: refresher}.Authenticate(req.Context(), req, Body)

	var e *errs.Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, errs.KindUnauthorized, e.Kind)
}

func TestAuthGateRotatesToken(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	refresher.On("Refresh", mock.Anything, "RefreshToken").Return(validToken)
	req := bodyRequest(t, `{"token":"RefreshToken"}`)

	auth, err := AuthGate{Refresher: refresher}.Authenticate(req.Context(), req, Body)

	assert.NoError(t, err)
	assert.Equal(t, validToken, auth)
	refresher.AssertNumberOfCalls(t, "Refresh", 1)
}

func TestPipelineSuccess(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	refresher.On("Refresh", mock.Anything, "RefreshToken").Return(validToken)
	n := &recordingNotifier{}

	h := newPipeline(refresher, n).Handle(Body, []string{"name"}, func(req *Request) (Reply, error) {
		return Reply{Message: "Community created", Data: map[string]string{"name": req.String(Body, "name")}}, nil
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/community", strings.NewReader(`{"name":"TestCommunity","token":"RefreshToken"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"access_token":"AccessToken","data":{"name":"TestCommunity"},"message":"Community created","refresh_token":"RefreshToken","status_code":200}`+"\n", rr.Body.String())
	assert.Empty(t, n.all())
}

func TestPipelineRefreshFailureSkipsHandler(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	refresher.On("Refresh", mock.Anything, "stale").Return(models.AuthToken{})
	n := &recordingNotifier{}
	called := false

	h := newPipeline(refresher, n).Handle(Query, []string{"name"}, func(req *Request) (Reply, error) {
		called = true
		return Reply{}, nil
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/community?name=TestCommunity&token=stale", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "UnAuthorized: token refresh failed", rr.Body.String())
	assert.False(t, called)
	assert.Len(t, n.all(), 1)
}

func TestPipelineMissingFieldSkipsHandler(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	refresher.On("Refresh", mock.Anything, "RefreshToken").Return(validToken)
	n := &recordingNotifier{}
	called := false

	h := newPipeline(refresher, n).Handle(Query, []string{"name", "email"}, func(req *Request) (Reply, error) {
		called = true
		return Reply{}, nil
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/community?name=TestCommunity&token=RefreshToken", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad Request: missing required field(s): email", rr.Body.String())
	assert.False(t, called)
	assert.Equal(t, []string{"http400: bad request: missing required field(s): email"}, n.all())
}

func TestPipelineMissingTokenSkipsRefresh(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	n := &recordingNotifier{}

	h := newPipeline(refresher, n).Handle(Query, []string{"name"}, func(req *Request) (Reply, error) {
		return Reply{}, nil
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/community?name=TestCommunity", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad Request: missing required field(s): token", rr.Body.String())
	refresher.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestPipelineBadBody(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	n := &recordingNotifier{}

	h := newPipeline(refresher, n).Handle(Body, nil, func(req *Request) (Reply, error) {
		return Reply{}, nil
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/meeting", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad Request: failed to decode request body", rr.Body.String())
	refresher.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestPipelineHandlerError(t *testing.T) {
	refresher := &mocks.TokenRefresher{}
	refresher.On("Refresh", mock.Anything, "RefreshToken").Return(validToken)
	n := &recordingNotifier{}

	h := newPipeline(refresher, n).Handle(Query, nil, func(req *Request) (Reply, error) {
		return Reply{}, errs.Store("failed to get community", errors.New("connection reset"))
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/community?token=RefreshToken", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error: failed to get community", rr.Body.String())
	assert.Equal(t, []string{"Internal Server Error: failed to get community."}, n.all())
}

func TestPipelineMethodNotAllowed(t *testing.T) {
	n := &recordingNotifier{}

	rr := httptest.NewRecorder()
	newPipeline(&mocks.TokenRefresher{}, n).MethodNotAllowed().ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/community", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method not allowed", rr.Body.String())
	assert.Equal(t, []string{"The HTTP method PATCH you just sent is not supported"}, n.all())
}
