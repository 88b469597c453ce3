package protocol

import (
	"bytes"
	"io"
)

// NewEncoder creates an encoder which writes messages to the writer under
// the supplied limits.
func NewEncoder(writer io.Writer, limits Limits) Encoder {
	rv := &encoder{
		writer: writer,
		limits: limits,
	}
	return rv
}

type encoder struct {
	writer io.Writer
	limits Limits
}

func (e *encoder) Encode(msg *Message) error {
	line, err := Serialize(msg, e.limits)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	buf.WriteString(line)
	buf.WriteString("\r\n")
	_, err = buf.WriteTo(e.writer)
	return err
}
