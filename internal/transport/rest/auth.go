package resttr

import "net/http"

// BearerTokenTransport is a http.RoundTripper that adds a bearer token to every request.
type BearerTokenTransport struct {
	http.RoundTripper
	Token string
}

func (t *BearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := t.RoundTripper
	if rt == nil {
		rt = http.DefaultTransport
	}

	if t.Token == "" {
		return rt.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.Token)

	return rt.RoundTrip(req)
}
