package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

// errorBody is the JSON shape of a server error payload.
type errorBody struct {
	Message string `json:"message"`
}

// classify maps a resty outcome onto the domain error taxonomy.
// It returns nil for a 2xx response whose body decoded cleanly.
func classify(resp *resty.Response, err error) error {
	if resp != nil && resp.RawResponse != nil {
		if !resp.IsSuccess() {
			return &domain.ServerError{Status: resp.StatusCode(), Message: serverMessage(resp)}
		}
		if err != nil {
			return &domain.RequestConfigError{Err: fmt.Errorf("decoding response: %w", err)}
		}
		return nil
	}

	if err == nil {
		return nil
	}
	return classifyTransport(err)
}

// classifyTransport handles failures where no response was received.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.RequestConfigError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.RequestConfigError{Err: err}
	}

	// http.Client wraps every transport failure in *url.Error; "parse" means
	// the request was never built.
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op != "parse" {
		return &domain.UnreachableError{Err: err}
	}

	return &domain.RequestConfigError{Err: err}
}

func serverMessage(resp *resty.Response) string {
	body, ok := resp.Error().(*errorBody)
	if !ok || body == nil {
		return ""
	}
	return body.Message
}

// describeCause returns the wrapped cause for log lines, since Error()
// only carries the user-facing message.
func describeCause(err error) string {
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return "no cause"
}
