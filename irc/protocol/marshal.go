package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLineLen is the historical protocol limit on a serialized line,
// including the terminating CRLF.
const MaxLineLen = 512

var (
	// ErrLineTooLong is returned when a serialized line would exceed the
	// caller's line budget. The serializer never truncates content.
	ErrLineTooLong = errors.New("line exceeds the length budget")

	// ErrTagsTooLong is returned when the tags section would exceed the
	// caller's tags budget.
	ErrTagsTooLong = errors.New("tags section exceeds the length budget")

	// ErrNumericRange is returned when a numeric reply code cannot be
	// represented as exactly three digits on the wire.
	ErrNumericRange = errors.New("numeric reply code must be between 001 and 999")
)

// InvalidParamError is returned when a non-trailing parameter cannot be
// represented on the wire. This is a programmer error on the caller's side,
// not a wire condition.
type InvalidParamError struct {
	Index int
	Param string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("parameter %d %q is not representable in a non-trailing position", e.Index, e.Param)
}

// Limits holds the caller-supplied length budgets. MaxLineLen bounds the
// line including the terminating CRLF. A MaxTagsLen above zero grants the
// tags section (including its "@" and separating space) a separate budget,
// the way IRCv3 message-tags capability negotiation does; at zero the tags
// count against the line budget.
type Limits struct {
	MaxLineLen int
	MaxTagsLen int
}

// DefaultLimits returns the historical limits: 512 bytes for the whole line,
// no separate tags budget.
func DefaultLimits() Limits {
	return Limits{MaxLineLen: MaxLineLen}
}

// Serialize encodes a message as a single protocol line, without the
// terminating CRLF. It is the exact inverse of Parse for every message that
// satisfies the arity and length invariants.
func Serialize(msg *Message, limits Limits) (string, error) {
	if msg.Command.Verb == "" && msg.Command.Code == 0 {
		return "", ErrMissingCommand
	}
	if msg.Command.IsNumeric() && (msg.Command.Code < 1 || msg.Command.Code > 999) {
		return "", ErrNumericRange
	}
	if len(msg.Command.Params) > maxParams {
		return "", ErrTooManyParams
	}

	var tags string
	if len(msg.Tags) > 0 {
		if err := ValidateTags(msg.Tags); err != nil {
			return "", err
		}
		tags = "@" + EncodeTags(msg.Tags) + " "
	}

	parts := []string{}
	if msg.Prefix != nil {
		parts = append(parts, ":"+EncodePrefix(msg.Prefix))
	}
	parts = append(parts, msg.Command.Token())

	params := msg.Command.Params
	for i, param := range params {
		last := i == len(params)-1
		if strings.ContainsAny(param, "\r\n") {
			return "", &InvalidParamError{Index: i, Param: param}
		}
		if needsTrailing(param) {
			if !last {
				return "", &InvalidParamError{Index: i, Param: param}
			}
			parts = append(parts, ":"+param)
		} else {
			parts = append(parts, param)
		}
	}

	body := strings.Join(parts, " ")
	if err := checkLimits(tags, body, limits); err != nil {
		return "", err
	}
	return tags + body, nil
}

// Marshal encodes the message under the historical limits.
func (msg *Message) Marshal() (string, error) {
	return Serialize(msg, DefaultLimits())
}

// needsTrailing reports whether a parameter must be sent as the trailing
// parameter: it is empty, contains a space, or starts with a colon.
func needsTrailing(param string) bool {
	return param == "" || strings.ContainsRune(param, ' ') || strings.HasPrefix(param, ":")
}

func checkLimits(tags, body string, limits Limits) error {
	const crlf = 2
	if limits.MaxTagsLen > 0 {
		if len(tags) > limits.MaxTagsLen {
			return ErrTagsTooLong
		}
		if limits.MaxLineLen > 0 && len(body)+crlf > limits.MaxLineLen {
			return ErrLineTooLong
		}
		return nil
	}
	if limits.MaxLineLen > 0 && len(tags)+len(body)+crlf > limits.MaxLineLen {
		return ErrLineTooLong
	}
	return nil
}
