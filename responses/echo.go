package responses

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/handling"
)

// Send writes the envelope as the response to the Echo request, streaming its body if needed. A
// streamed response which ends because the client went away (i.e. because the request's context
// was canceled) isn't reported as an error; any other error is returned for Echo's error handler.
func Send(c echo.Context, e *Envelope) error {
	err := e.Write(c.Request().Context(), c.Response())
	if errors.Is(err, context.Canceled) {
		c.Logger().Debugf("stopped sending response to %s: %s", c.Request().RequestURI, err)
	}
	return handling.Except(err, context.Canceled)
}
