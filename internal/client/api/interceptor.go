package api

import (
	"net/http"

	"github.com/google/uuid"

	"shopkeep/internal/client/credential"
	"shopkeep/internal/common"
)

// tokenTransport attaches the stored session token to every outgoing
// request. The credential store is consulted once per request, within that
// request's lifecycle; when no token is stored (or the store fails) the
// request proceeds unauthenticated. Every request is also stamped with a
// correlation id.
type tokenTransport struct {
	next  http.RoundTripper
	creds credential.Store
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if token, err := t.creds.Get(req.Context()); err == nil && token != "" {
		out.Header.Set(common.TokenHeaderName, token)
	}
	out.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	return t.next.RoundTrip(out)
}
