package transport

import (
	"fmt"

	apperrors "github.com/protocolhere/urlscan/internal/shared/errors"
)

// TransportError reports a failed fetch. It covers DNS, connection, TLS and
// timeout failures as well as unsuccessful HTTP statuses.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{apperrors.ErrTransport, e.Err}
}
