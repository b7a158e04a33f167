package core

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type (
	// ProgressFunc reports upload progress as the request body is sent.
	// total is -1 when the body size is unknown.
	ProgressFunc func(sent, total int64)

	CallOptions struct {
		Headers          map[string]string
		OnUploadProgress ProgressFunc
	}

	CallOption func(*CallOptions)

	// FormFile is one file part of a multipart upload.
	FormFile struct {
		Field    string
		Filename string
		Content  io.Reader
		Size     int64
	}

	// Form is a multipart request body: plain fields plus file parts.
	// Passing a *Form as a call body switches the request to multipart.
	Form struct {
		Fields map[string]string
		Files  []FormFile
	}

	// APIClient is the single network boundary of the client core.
	// Implementations carry the session cookie on every call; none ever
	// attaches a bearer token. Calls are not retried, cached or deduplicated.
	APIClient interface {
		Get(ctx context.Context, path string, out interface{}, opts ...CallOption) error
		Post(ctx context.Context, path string, body, out interface{}, opts ...CallOption) error
		Put(ctx context.Context, path string, body, out interface{}, opts ...CallOption) error
		Patch(ctx context.Context, path string, body, out interface{}, opts ...CallOption) error
		Delete(ctx context.Context, path string, out interface{}, opts ...CallOption) error
	}
)

func NewCallOptions(opts ...CallOption) *CallOptions {
	co := &CallOptions{}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

func WithHeader(key, value string) CallOption {
	return func(co *CallOptions) {
		if co.Headers == nil {
			co.Headers = make(map[string]string)
		}
		co.Headers[key] = value
	}
}

func WithUploadProgress(fn ProgressFunc) CallOption {
	return func(co *CallOptions) { co.OnUploadProgress = fn }
}

// HTTPError is a non-2xx response from the API.
type HTTPError struct {
	Status  int
	Message string
}

func (err *HTTPError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("api: http %d", err.Status)
	}
	return fmt.Sprintf("api: http %d: %s", err.Status, err.Message)
}

// NetworkError means no usable response came back at all.
type NetworkError struct {
	Err error
}

func (err *NetworkError) Error() string {
	return fmt.Sprintf("api: network failure: %v", err.Err)
}

func (err *NetworkError) Unwrap() error { return err.Err }

// HTTPStatus returns the response status carried by err, or 0 if err is not
// an *HTTPError.
func HTTPStatus(err error) int {
	if herr, ok := errors.Cause(err).(*HTTPError); ok {
		return herr.Status
	}
	return 0
}

func IsNetworkError(err error) bool {
	_, ok := errors.Cause(err).(*NetworkError)
	return ok
}
