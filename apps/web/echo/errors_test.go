package echoweb

import (
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
	logsvc "github.com/shareulbi/webcore/services/logger"
)

func newErrorHandlerContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func Test_errorHandler_signalsShutdown(t *testing.T) {
	ctx, rec := newErrorHandlerContext(t)
	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))

	var signalled bool
	handler := newAppHTTPErrorHandler(logger, func() { signalled = true })

	handler(errors.Wrap(core.NewShutdownError("integrity violation"), "listing posts"), ctx)

	assert.True(t, signalled)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_errorHandler_ordinaryErrorDoesNotShutDown(t *testing.T) {
	ctx, rec := newErrorHandlerContext(t)
	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))

	var signalled bool
	handler := newAppHTTPErrorHandler(logger, func() { signalled = true })

	handler(errors.New("boom"), ctx)

	assert.False(t, signalled)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_errorHandler_relaysUpstreamStatus(t *testing.T) {
	ctx, rec := newErrorHandlerContext(t)
	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
	handler := newAppHTTPErrorHandler(logger, func() { t.Fatal("unexpected shutdown signal") })

	handler(&core.HTTPError{Status: http.StatusNotFound, Message: "post not found"}, ctx)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "post not found")
}
