package graphqltemplate

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Query is the text of a GraphQL document. It is never parsed.
type Query string

func (q Query) String() string {
	return string(q)
}

// ReadQuery reads r to EOF and returns its lines, each one followed by "\n".
// A source without a trailing line break still gets one after its last line,
// and an empty source yields an empty Query. r is not closed.
func ReadQuery(r io.Reader) (Query, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	scanner.Split(scanLines)
	for scanner.Scan() {
		sb.Write(scanner.Bytes())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", NewError(err, ErrReadQuery)
	}
	return Query(sb.String()), nil
}

// ReadQueryFile reads the GraphQL document stored at path. The file is
// closed before returning, whether reading succeeded or not.
func ReadQueryFile(path string) (q Query, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewError(err, ErrOpenQuery)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close query file")
		}
	}()
	return ReadQuery(f)
}

// scanLines is bufio.ScanLines extended to accept a lone '\r' as a line
// terminator besides "\n" and "\r\n".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// need one more byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
