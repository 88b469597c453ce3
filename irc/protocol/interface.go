// Package protocol implements the IRC wire protocol: tokenizing raw lines
// into structured messages, validating them and serializing structured
// messages back to wire lines. All operations are pure functions over
// immutable inputs; the command and reply tables are read-only static data,
// so any number of calls may run concurrently without coordination.
package protocol

// Encoder wraps an io.Writer and can be used to write messages to it.
type Encoder interface {
	// Encode encodes a message and writes it to the underlying writer,
	// followed by CRLF.
	Encode(*Message) error
}

// Decoder wraps an io.Reader and can be used to receive messages from it.
// A decoder holds buffered read state and is not safe for concurrent use.
type Decoder interface {
	// Decode receives a single line from the underlying reader and
	// decodes it into a message.
	Decode() (*Message, error)
}
