package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/ui"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows
// how to render our error taxonomy. Upstream API failures stay local to the
// triggering view; there is no global crash page beyond this plain one.
// signalShutdown is called in order to gracefully shutdown the Server
// whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				message = msg
			}
		case *core.HTTPError:
			// the upstream API said no; relay its word
			code = origErr.Status
			message = origErr.Message
			if message == "" {
				message = http.StatusText(code)
			}
		case *core.NetworkError:
			code = http.StatusBadGateway
			message = "Server tidak dapat dihubungi"
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			message = "Periksa kembali isian Anda"
		case *core.ValidationError:
			code = http.StatusBadRequest
			message = origErr.Error()
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(code)
			logger.Error(message, errors.Wrap(err, message))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Response().Committed {
			return
		}
		_ = render(ctx, code, ui.ErrorPage(code, message))
	}
}
