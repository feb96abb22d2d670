package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MissingField("name").Status())
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").Status())
	assert.Equal(t, http.StatusBadRequest, NotFound("gone").Status())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("nope").Status())
	assert.Equal(t, http.StatusMethodNotAllowed, MethodNotSupported("PATCH").Status())
	assert.Equal(t, http.StatusInternalServerError, Store("boom", errors.New("x")).Status())
}

func TestMissingFieldNamesAll(t *testing.T) {
	err := MissingField("name", "token")
	assert.Equal(t, "missing required field(s): name, token", err.Description)
	assert.Equal(t, "missing field: missing required field(s): name, token", err.Error())
}

func TestStoreUnwraps(t *testing.T) {
	inner := errors.New("connection refused")
	err := Store("failed to add community", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "store error: failed to add community: connection refused", err.Error())
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	unauth := Unauthorized("a is not an admin of b")
	wrapped := fmt.Errorf("handler: %w", unauth)
	assert.Same(t, unauth, From(wrapped))

	plain := errors.New("mystery")
	got := From(plain)
	assert.Equal(t, KindStore, got.Kind)
	assert.ErrorIs(t, got, plain)
}
