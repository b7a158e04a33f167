package restsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/pkg/errors"

	"github.com/shareulbi/webcore/core"
)

// Client implements core.APIClient over net/http. The cookie jar it owns
// carries the httpOnly session cookie set by POST /login; nothing else
// identifies the session and no token is ever attached. No timeout is set
// here; cancellation is the caller's context's business.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ core.APIClient = (*Client)(nil)

func NewClient(conf *core.Config) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "restsvc: creating cookie jar")
	}
	return &Client{
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...core.CallOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}, opts ...core.CallOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts ...core.CallOption) error {
	co := core.NewCallOptions(opts...)

	var (
		rdr         io.Reader
		contentType string
		size        int64 = -1
	)
	switch b := body.(type) {
	case nil:
	case *core.Form:
		buf, ct, err := encodeForm(b)
		if err != nil {
			return err
		}
		rdr, contentType, size = buf, ct, int64(buf.Len())
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "restsvc: encoding request body")
		}
		rdr, contentType, size = bytes.NewReader(data), "application/json", int64(len(data))
	}
	if rdr != nil && co.OnUploadProgress != nil {
		rdr = &progressReader{r: rdr, total: size, fn: co.OnUploadProgress}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return errors.Wrap(err, "restsvc: building request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range co.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &core.NetworkError{Err: err}
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "restsvc: decoding response body")
	}
	return nil
}

// decodeError maps a non-2xx response to *core.HTTPError, picking up the
// server's message field when the body carries one.
func decodeError(resp *http.Response) error {
	herr := &core.HTTPError{Status: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		herr.Message = payload.Message
	}
	return herr
}

func encodeForm(form *core.Form) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range form.Fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, "", errors.Wrapf(err, "restsvc: writing form field %q", field)
		}
	}
	for _, f := range form.Files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, "", errors.Wrapf(err, "restsvc: creating form file %q", f.Field)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", errors.Wrapf(err, "restsvc: writing form file %q", f.Field)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "restsvc: closing multipart writer")
	}
	return &buf, w.FormDataContentType(), nil
}
