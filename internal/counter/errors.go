package counter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-counter-client/internal/adapter"
)

// ErrUnknownAction is returned by [Client.PostAction] for an action outside
// the supported set. No request is sent and the state is not touched.
var ErrUnknownAction = adapter.ErrUnknownAction

const (
	opGet  = "GET"
	opPost = "POST"
)

// describeError converts a failed request into the message shown to the
// user: "<OP> failed: <body>" for a non-success response, the error text
// for anything else.
func describeError(op string, err error) string {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%s failed: %s", op, statusErr.Detail())
	}

	return err.Error()
}
