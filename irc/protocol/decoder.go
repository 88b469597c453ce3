package protocol

import (
	"bufio"
	"io"
)

// NewDecoder creates a decoder which reads messages from the reader, one
// CRLF or LF terminated line at a time.
func NewDecoder(reader io.Reader) Decoder {
	rv := &decoder{
		reader: bufio.NewReader(reader),
	}
	return rv
}

type decoder struct {
	reader *bufio.Reader
}

func (d *decoder) Decode() (*Message, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// A final line without a terminator is still a line.
			return Parse(line)
		}
		return nil, err
	}
	return Parse(line)
}
