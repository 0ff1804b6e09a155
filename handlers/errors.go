package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/fblogin"
	"github.com/dmitrymomot/fblogin/middlewares"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler renders handler errors as JSON bodies of the form
// {"error": ..., "code": ..., "request_id": ...}.
//
// Timeouts become 504 and panics or unknown errors become 500 with a generic
// message. Causes are logged, never sent to the client.
func ErrorHandler(c fblogin.Context, err error) error {
	status := http.StatusInternalServerError
	resp := errorResponse{
		Error:     "internal server error",
		RequestID: middlewares.GetRequestID(c),
	}

	if _, ok := middlewares.AsTimeoutError(err); ok {
		status = http.StatusGatewayTimeout
		resp.Error = "request timed out"
		resp.Code = "timeout"
	} else if _, ok := middlewares.AsPanicError(err); ok {
		resp.Code = "internal"
	} else if he := fblogin.AsHTTPError(err); he != nil {
		status = he.StatusCode()
		resp.Error = he.Message
		resp.Code = he.ErrorCode
	}
	if resp.Code == "" {
		resp.Code = statusCode(status)
	}

	attrs := []any{
		slog.Int("status", status),
		slog.String("code", resp.Code),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		c.LogError("request failed", attrs...)
	} else {
		c.LogWarn("request rejected", attrs...)
	}

	return c.JSON(status, resp)
}

// NotFound renders unknown routes through the error handler.
func NotFound(c fblogin.Context) error {
	return fblogin.NewHTTPError(http.StatusNotFound, "not found", fblogin.WithErrorCode("not_found"))
}

// MethodNotAllowed renders known routes hit with the wrong method.
func MethodNotAllowed(c fblogin.Context) error {
	return fblogin.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed",
		fblogin.WithErrorCode("method_not_allowed"))
}

// statusCode turns 502 into "bad_gateway".
func statusCode(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
