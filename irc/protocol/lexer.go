package protocol

import (
	"errors"
	"strings"
)

var (
	// ErrMissingCommand is returned when a line contains no command token.
	ErrMissingCommand = errors.New("missing command")

	// ErrEmbeddedNewline is returned when a CR or LF appears inside the
	// body of a line. Callers are expected to split their input on line
	// boundaries before handing single lines to the engine.
	ErrEmbeddedNewline = errors.New("embedded CR or LF in line")

	// ErrTooManyParams is returned when a message carries more than the
	// protocol maximum of 15 parameters.
	ErrTooManyParams = errors.New("too many parameters")
)

// maxParams is the protocol limit on parameters: 14 middle parameters plus
// one trailing parameter.
const maxParams = 15

// rawTokens is the output of tokenize: the still-encoded segments of one
// line, before the tag and prefix codecs and the command resolver run.
type rawTokens struct {
	tags      string
	hasTags   bool
	prefix    string
	hasPrefix bool
	command   string
	params    []string
}

// tokenize splits a raw line into its tags segment, prefix segment, command
// token and parameter list. It performs a single left to right pass and never
// drops data: once 14 middle parameters have been consumed, the rest of the
// line becomes the trailing parameter.
func tokenize(line string) (*rawTokens, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.ContainsAny(line, "\r\n") {
		return nil, ErrEmbeddedNewline
	}

	rv := &rawTokens{}

	// Tags segment. Tag values escape spaces, so the first space ends it.
	if strings.HasPrefix(line, "@") {
		i := strings.IndexByte(line, ' ')
		if i < 0 {
			return nil, ErrMissingCommand
		}
		rv.tags = line[1:i]
		rv.hasTags = true
		line = skipSpaces(line[i+1:])
	}

	// Prefix segment.
	if strings.HasPrefix(line, ":") {
		i := strings.IndexByte(line, ' ')
		if i < 0 {
			return nil, ErrMissingCommand
		}
		rv.prefix = line[1:i]
		rv.hasPrefix = true
		line = skipSpaces(line[i+1:])
	}

	// Command token.
	if i := strings.IndexByte(line, ' '); i >= 0 {
		rv.command = line[:i]
		line = skipSpaces(line[i+1:])
	} else {
		rv.command = line
		line = ""
	}
	if rv.command == "" {
		return nil, ErrMissingCommand
	}

	// Parameters. A parameter introduced by ":" is the trailing parameter
	// and consumes the rest of the line verbatim, as does the 15th
	// parameter regardless of content.
	for line != "" {
		if strings.HasPrefix(line, ":") {
			rv.params = append(rv.params, line[1:])
			break
		}
		if len(rv.params) == maxParams-1 {
			rv.params = append(rv.params, line)
			break
		}
		if i := strings.IndexByte(line, ' '); i >= 0 {
			rv.params = append(rv.params, line[:i])
			line = skipSpaces(line[i+1:])
		} else {
			rv.params = append(rv.params, line)
			break
		}
	}

	return rv, nil
}

// skipSpaces drops any extra separating spaces. Runs of spaces between
// tokens are treated as one separator; this is a normalization, parsing and
// re-serializing such a line yields single spaces.
func skipSpaces(line string) string {
	return strings.TrimLeft(line, " ")
}
