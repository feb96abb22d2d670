package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/identity"
	"github.com/biit/biit-api/models"
)

// TokenField is the field every authenticated request carries its refresh token in
const TokenField = "token"

// Reply is what a handler hands back on success
type Reply struct {
	Message string
	Data    interface{}
}

// HandlerFunc is a domain handler. It runs only after the caller has been
// authenticated and its required fields validated.
type HandlerFunc func(req *Request) (Reply, error)

// ValidateFields checks that every name is present and not empty in src. All
// missing names are reported together.
func ValidateFields(req *Request, src Source, names []string) error {
	var missing []string
	for _, name := range names {
		if !req.Has(src, name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errs.MissingField(missing...)
	}
	return nil
}

// AuthGate refreshes the caller's token with the identity provider. It only
// decides whether the session is live; who the caller is gets checked by the
// handlers against stored data.
type AuthGate struct {
	Refresher identity.TokenRefresher
}

// Authenticate returns the rotated token pair for the request
func (g AuthGate) Authenticate(ctx context.Context, req *Request, src Source) (models.AuthToken, error) {
	token := req.String(src, TokenField)
	if token == "" {
		return models.AuthToken{}, errs.MissingField(TokenField)
	}
	auth := g.Refresher.Refresh(ctx, token)
	if auth.Empty() {
		return models.AuthToken{}, errs.Unauthorized("token refresh failed")
	}
	return auth, nil
}

// Pipeline composes the stages every authenticated route goes through:
// decode, AuthGate, ValidateFields, the handler and finally the Responder.
type Pipeline struct {
	Gate      AuthGate
	Responder Responder
}

// Handle builds the http.Handler for a route whose fields come from src
func (p Pipeline) Handle(src Source, required []string, h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := NewRequest(r, src)
		if err != nil {
			p.Responder.Failure(w, err)
			return
		}

		auth, err := p.Gate.Authenticate(r.Context(), req, src)
		if err != nil {
			p.Responder.Failure(w, err)
			return
		}

		if err := ValidateFields(req, src, required); err != nil {
			p.Responder.Failure(w, err)
			return
		}

		reply, err := h(req)
		if err != nil {
			p.Responder.Failure(w, err)
			return
		}

		zap.S().Debugw("request handled", "path", r.URL.Path, "method", r.Method, "message", reply.Message)
		p.Responder.Success(w, auth, reply)
	})
}

// MethodNotAllowed replies 405 through the Responder
func (p Pipeline) MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.Responder.Failure(w, errs.MethodNotSupported(r.Method))
	})
}
