package ports

import (
	"context"
	"io"
	"net/http"
)

// UnauthorizedPolicy tells QueryFetch what to do with a 401 after the
// durable token has been cleared.
type UnauthorizedPolicy int

const (
	// On401Fail surfaces domain.ErrUnauthorized to the caller.
	On401Fail UnauthorizedPolicy = iota
	// On401ReturnNil resolves the read to a nil payload instead of failing.
	On401ReturnNil
)

// FormFile is an optional file attachment for multipart requests.
type FormFile struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Requester is the store API transport: it resolves paths against the API
// origin, attaches the bearer token when one is stored, and normalizes
// non-2xx responses into errors.
type Requester interface {
	// Request performs a JSON request and returns the raw response on any
	// 2xx status. The caller owns the body.
	Request(ctx context.Context, method, path string, body any) (*http.Response, error)
	// RequestMultipart posts form fields plus an optional file.
	RequestMultipart(ctx context.Context, path string, fields map[string]string, file *FormFile) (*http.Response, error)
	// QueryFetch performs a read and returns the response payload. Under
	// On401ReturnNil a 401 yields (nil, nil) instead of an error.
	QueryFetch(ctx context.Context, path string, policy UnauthorizedPolicy) ([]byte, error)
}
