package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/boreq/guinea"
	"github.com/pkg/errors"
	"github.com/sid3xyz/slirc/irc/interchange"
	"github.com/sid3xyz/slirc/irc/protocol"
)

var buildCmd = guinea.Command{
	Arguments: []guinea.Argument{
		{Name: "message", Optional: true, Description: "message in the interchange form, \"-\" or absent to read stdin"},
	},
	Run:              runBuild,
	ShortDescription: "builds a raw line",
	Description: `
Builds a raw protocol line from a message given in its interchange form,
either as an argument or on stdin. The line length budgets come from the
config file.`,
}

func runBuild(c guinea.Context) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	data, err := messageInput(c)
	if err != nil {
		return err
	}

	msg, err := interchange.Unmarshal(data)
	if err != nil {
		return errors.Wrap(err, "could not decode the message")
	}

	line, err := protocol.Build(msg, conf.Limits())
	if err != nil {
		return errors.Wrap(err, "could not build the line")
	}

	fmt.Println(line)
	return nil
}

func messageInput(c guinea.Context) ([]byte, error) {
	if len(c.Arguments) == 0 || c.Arguments[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "could not read stdin")
		}
		return data, nil
	}
	return []byte(c.Arguments[0]), nil
}
