package graphqltemplate

import "github.com/pkg/errors"

// The errors below prefix the message of the error they wrap. Match a failure
// by its message; errors.Is matches the wrapped cause, not these values.
var (
	ErrOpenQuery       = errors.New("open query")
	ErrReadQuery       = errors.New("read query")
	ErrEncodePayload   = errors.New("encode payload")
	ErrDecodeVariables = errors.New("decode variables")
)

// NewError wraps err with the message of one of the sentinel errors above.
// The original error stays reachable through errors.Cause and errors.Is;
// wrappedErr itself is not.
func NewError(err error, wrappedErr error) error {
	return errors.Wrap(err, wrappedErr.Error())
}
