package protocol

// version identifies the engine build. Diagnostics only.
var version = "0.1.0"

// Version returns the static engine build identifier.
func Version() string {
	return version
}

// Parse decodes a single raw line into a message. The line may carry a
// trailing CRLF but must not contain any other CR or LF. A failure on one
// line never affects the caller's ability to parse the next one; every
// failure is a returned value, classified by the lexer, the tag and prefix
// codecs or the command resolver.
func Parse(line string) (*Message, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	rv := &Message{}
	if tokens.hasTags {
		rv.Tags, err = DecodeTags(tokens.tags)
		if err != nil {
			return nil, err
		}
	}
	if tokens.hasPrefix {
		rv.Prefix, err = DecodePrefix(tokens.prefix)
		if err != nil {
			return nil, err
		}
	}
	rv.Command, err = Resolve(tokens.command, tokens.params)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// Build encodes a message as a raw line under the supplied limits. It is the
// Serialize operation exposed symmetrically to Parse.
func Build(msg *Message, limits Limits) (string, error) {
	return Serialize(msg, limits)
}
