package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biit/biit-api/errs"
)

func bodyRequest(t *testing.T, body string) *Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/community", strings.NewReader(body))
	req, err := NewRequest(r, Body)
	require.NoError(t, err)
	return req
}

func TestNewRequestDecodesBody(t *testing.T) {
	req := bodyRequest(t, `{"name":"Cool Community","duration":30,"user_list":["a","b"],"empty":""}`)

	assert.True(t, req.Has(Body, "name"))
	assert.True(t, req.Has(Body, "duration"))
	assert.False(t, req.Has(Body, "empty"))
	assert.False(t, req.Has(Body, "missing"))
	assert.Equal(t, "Cool Community", req.String(Body, "name"))
	assert.Equal(t, "30", req.String(Body, "duration"))
}

func TestNewRequestEmptyBody(t *testing.T) {
	req := bodyRequest(t, "")

	assert.False(t, req.Has(Body, "token"))
}

func TestNewRequestBadBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/community", strings.NewReader(`{"name":`))

	_, err := NewRequest(r, Body)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.KindBadRequest, e.Kind)
}

func TestRequestQuery(t *testing.T) {
	q := url.Values{"name": {"TestCommunity"}, "blank": {""}}
	r := httptest.NewRequest(http.MethodGet, "/community?"+q.Encode(), nil)
	req, err := NewRequest(r, Query)
	require.NoError(t, err)

	assert.True(t, req.Has(Query, "name"))
	assert.False(t, req.Has(Query, "blank"))
	assert.False(t, req.Has(Query, "token"))
	assert.Equal(t, "TestCommunity", req.String(Query, "name"))
	// body fields are not visible to query routes
	assert.False(t, req.Has(Body, "name"))
}

func TestRequestStrings(t *testing.T) {
	req := bodyRequest(t, `{"Admins":"Me, John ,Jeff","Members":["Me","Adam"],"bad":[1,2],"num":5}`)

	admins, err := req.Strings(Body, "Admins")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Me", "John", "Jeff"}, admins)

	members, err := req.Strings(Body, "Members")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Me", "Adam"}, members)

	none, err := req.Strings(Body, "missing")
	assert.NoError(t, err)
	assert.Equal(t, []string{}, none)

	_, err = req.Strings(Body, "bad")
	assert.Error(t, err)
	_, err = req.Strings(Body, "num")
	assert.Error(t, err)
}

func TestRequestInt(t *testing.T) {
	req := bodyRequest(t, `{"duration":30,"text":"thirty","float":1.5}`)

	n, err := req.Int(Body, "duration")
	assert.NoError(t, err)
	assert.Equal(t, 30, n)

	_, err = req.Int(Body, "text")
	assert.EqualError(t, err, `bad request: text must be an integer, got "thirty"`)

	_, err = req.Int(Body, "float")
	assert.Error(t, err)
}

func TestRequestObject(t *testing.T) {
	q := url.Values{"updateFields": {`{"name":"lanes","duration":30}`}, "bad": {"nope"}}
	r := httptest.NewRequest(http.MethodPut, "/community?"+q.Encode(), nil)
	req, err := NewRequest(r, Query)
	require.NoError(t, err)

	obj, err := req.Object(Query, "updateFields")
	assert.NoError(t, err)
	assert.Equal(t, "lanes", obj["name"])
	assert.Equal(t, "30", obj["duration"].(interface{ String() string }).String())

	_, err = req.Object(Query, "bad")
	assert.Error(t, err)

	_, err = req.Object(Query, "missing")
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.KindMissingField, e.Kind)

	bodyReq := bodyRequest(t, `{"updateFields":{"name":"lanes"}}`)
	obj, err = bodyReq.Object(Body, "updateFields")
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "lanes"}, obj)
}

func TestRequestVar(t *testing.T) {
	var got string
	router := mux.NewRouter()
	router.HandleFunc("/community/{name}/join", func(w http.ResponseWriter, r *http.Request) {
		req, err := NewRequest(r, Query)
		require.NoError(t, err)
		got = req.Var("name")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/community/Johnson/join", nil))

	assert.Equal(t, "Johnson", got)
}
