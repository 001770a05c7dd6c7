package graphqltemplate

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/go-kit/log/level"
)

type payload struct {
	Query     Query     `json:"query"`
	Variables Variables `json:"variables"`
}

// Build encodes q and vars into a compact JSON request body of the form
// {"query":"...","variables":...}. Absent variables encode as null.
// The result has no trailing newline.
func Build(q Query, vars Variables, opts ...Option) (body string, err error) {
	o := newOptions(opts)
	defer func(begin time.Time) {
		var count interface{} = "null"
		if vars.Present() {
			count = vars.Len()
		}
		level.Debug(o.logger).Log(
			"method", "build",
			"query_bytes", len(q),
			"variables", count,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	var request bytes.Buffer
	enc := json.NewEncoder(&request)
	enc.SetEscapeHTML(false)
	if err = enc.Encode(payload{Query: q, Variables: vars}); err != nil {
		return "", NewError(err, ErrEncodePayload)
	}
	return strings.TrimSuffix(request.String(), "\n"), nil
}

// Parse reads a GraphQL document from r and builds its request body.
// r is left open.
func Parse(r io.Reader, vars Variables, opts ...Option) (string, error) {
	q, err := ReadQuery(r)
	if err != nil {
		return "", err
	}
	return Build(q, vars, opts...)
}

// ParseFile reads the GraphQL document at path and builds its request body.
func ParseFile(path string, vars Variables, opts ...Option) (string, error) {
	q, err := ReadQueryFile(path)
	if err != nil {
		return "", err
	}
	return Build(q, vars, opts...)
}
