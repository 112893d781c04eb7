package httpkit

import (
	"net/http"

	phttp "oficina/internal/platform/net/http"
)

// PostJSON mounts a pure JSON handler under POST
// the payload is bound and validated before h runs
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
