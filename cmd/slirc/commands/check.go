package commands

import (
	"bufio"
	"os"

	"github.com/boreq/guinea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sid3xyz/slirc/irc/protocol"
)

var checkCmd = guinea.Command{
	Options: []guinea.Option{
		{
			Name:        "q",
			Type:        guinea.Bool,
			Description: "Report only the summary",
		},
	},
	Run:              runCheck,
	ShortDescription: "checks lines read from stdin",
	Description: `
Reads raw protocol lines from stdin and runs each through the engine. Every
malformed line is reported with its line number and the failure kind; one bad
line never affects the next. Exits with an error if any line failed.`,
}

func runCheck(c guinea.Context) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if c.Options["q"].Bool() {
		log = log.Level(zerolog.Disabled)
	}

	var total, failed int
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		total++
		if _, err := protocol.Parse(scanner.Text()); err != nil {
			failed++
			log.Error().Int("line", total).Err(err).Msg("malformed line")
			continue
		}
		log.Debug().Int("line", total).Msg("ok")
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not read stdin")
	}

	log.Info().Int("total", total).Int("failed", failed).Msg("done")
	if failed > 0 {
		return errors.Errorf("%d of %d lines are malformed", failed, total)
	}
	return nil
}
