package commands

import (
	"fmt"

	"github.com/boreq/guinea"
	"github.com/sid3xyz/slirc/irc/protocol"
)

var MainCmd = guinea.Command{
	Options: []guinea.Option{
		{
			Name:        "version",
			Type:        guinea.Bool,
			Description: "Display version",
		},
	},
	Run: func(c guinea.Context) error {
		if c.Options["version"].Bool() {
			fmt.Println(protocol.Version())
			return nil
		}
		return guinea.ErrInvalidParms
	},
	Subcommands: map[string]*guinea.Command{
		"parse": &parseCmd,
		"build": &buildCmd,
		"check": &checkCmd,
		"init":  &initCmd,
	},
	ShortDescription: "IRC wire protocol tool",
	Description: `
Slirc parses raw IRC protocol lines into their interchange form and builds
raw lines back from it. The same engine backs every subcommand, so a line
accepted here is accepted by any other implementation of the engine.`,
}
