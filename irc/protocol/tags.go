package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTagKey is returned when a tag in the tags segment has no key.
var ErrEmptyTagKey = errors.New("empty tag key")

// DuplicateTagError is returned when two tags in one message share a key.
// Keys are compared case sensitively, vendor prefix included.
type DuplicateTagError struct {
	Key string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("duplicate tag key %q", e.Key)
}

// InvalidTagKeyError is returned when a caller-built tag key contains
// characters which would break the wire form of the tags segment. This is a
// programmer error on the caller's side; keys arriving over the wire cannot
// contain them.
type InvalidTagKeyError struct {
	Key string
}

func (e *InvalidTagKeyError) Error() string {
	return fmt.Sprintf("tag key %q contains characters not allowed in a key", e.Key)
}

// ValidateTags checks the invariants every tag list must satisfy before it
// can travel: keys are non-empty, unique, and free of the characters which
// separate or terminate the tags segment on the wire.
func ValidateTags(tags []Tag) error {
	seen := make(map[string]bool)
	for _, tag := range tags {
		if tag.Key == "" {
			return ErrEmptyTagKey
		}
		if strings.ContainsAny(tag.Key, " ;=\r\n") {
			return &InvalidTagKeyError{Key: tag.Key}
		}
		if seen[tag.Key] {
			return &DuplicateTagError{Key: tag.Key}
		}
		seen[tag.Key] = true
	}
	return nil
}

// tagEscapes lists the characters which cannot appear literally in a tag
// value together with their two-character escape sequences. The same table
// drives escaping and unescaping so the two stay symmetric.
var tagEscapes = []struct {
	literal byte
	escaped byte // the character following the backslash
}{
	{';', ':'},
	{' ', 's'},
	{'\\', '\\'},
	{'\r', 'r'},
	{'\n', 'n'},
}

func escapeTagValue(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		escaped := false
		for _, e := range tagEscapes {
			if c == e.literal {
				b.WriteByte('\\')
				b.WriteByte(e.escaped)
				escaped = true
				break
			}
		}
		if !escaped {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescapeTagValue reverses escapeTagValue. Decoding is lenient: a backslash
// followed by a character outside the escape table drops the backslash and
// keeps the character, and a lone trailing backslash is dropped.
func unescapeTagValue(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(value) {
			break
		}
		c = value[i]
		literal := c
		for _, e := range tagEscapes {
			if c == e.escaped {
				literal = e.literal
				break
			}
		}
		b.WriteByte(literal)
	}
	return b.String()
}

// DecodeTags decodes the tags segment of a message, the part between the
// leading "@" and the following space, excluding both.
func DecodeTags(segment string) ([]Tag, error) {
	var rv []Tag
	seen := make(map[string]bool)
	for _, part := range strings.Split(segment, ";") {
		kv := strings.SplitN(part, "=", 2)
		key := kv[0]
		if key == "" {
			return nil, ErrEmptyTagKey
		}
		if seen[key] {
			return nil, &DuplicateTagError{Key: key}
		}
		seen[key] = true
		tag := Tag{Key: key}
		if len(kv) == 2 {
			value := unescapeTagValue(kv[1])
			tag.Value = &value
		}
		rv = append(rv, tag)
	}
	return rv, nil
}

// EncodeTags encodes tags as a tags segment, without the leading "@" and the
// trailing space. Tags are emitted in order; a tag without a value is emitted
// as a bare key.
func EncodeTags(tags []Tag) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag.Value == nil {
			parts = append(parts, tag.Key)
		} else {
			parts = append(parts, tag.Key+"="+escapeTagValue(*tag.Value))
		}
	}
	return strings.Join(parts, ";")
}
