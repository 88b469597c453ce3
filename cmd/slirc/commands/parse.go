package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/boreq/guinea"
	"github.com/pkg/errors"
	"github.com/sid3xyz/slirc/irc/interchange"
	"github.com/sid3xyz/slirc/irc/protocol"
)

var parseCmd = guinea.Command{
	Arguments: []guinea.Argument{
		{Name: "line", Description: "raw protocol line to parse"},
	},
	Run:              runParse,
	ShortDescription: "parses a raw line",
	Description: `
Parses a single raw protocol line and prints the message in its interchange
form.`,
}

func runParse(c guinea.Context) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	msg, err := protocol.Parse(c.Arguments[0])
	if err != nil {
		return errors.Wrap(err, "could not parse the line")
	}

	data, err := interchange.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "could not encode the message")
	}

	if conf.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return errors.Wrap(err, "could not indent the output")
		}
		data = buf.Bytes()
	}

	fmt.Println(string(data))
	return nil
}
