package protocol

import (
	"errors"
	"strings"
)

// ErrEmptyPrefix is returned when the prefix segment of a message is empty.
var ErrEmptyPrefix = errors.New("empty prefix")

// DecodePrefix decodes the prefix segment of a message, the part between the
// leading ":" and the following space, excluding both. A segment containing
// "!" is a user prefix split at "!" and "@"; anything else is taken verbatim
// as a server name.
func DecodePrefix(segment string) (*Prefix, error) {
	if segment == "" {
		return nil, ErrEmptyPrefix
	}
	i := strings.IndexByte(segment, '!')
	if i < 0 {
		return &Prefix{Server: segment}, nil
	}
	rv := &Prefix{Nick: segment[:i]}
	rest := segment[i+1:]
	if j := strings.IndexByte(rest, '@'); j >= 0 {
		rv.User = rest[:j]
		rv.Host = rest[j+1:]
	} else {
		rv.User = rest
	}
	return rv, nil
}

// EncodePrefix encodes a prefix as a prefix segment, without the leading ":"
// and the trailing space.
func EncodePrefix(p *Prefix) string {
	if p.IsServer() {
		return p.Server
	}
	rv := p.Nick
	if p.User != "" {
		rv += "!" + p.User
	}
	if p.Host != "" {
		rv += "@" + p.Host
	}
	return rv
}
