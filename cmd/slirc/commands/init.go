package commands

import (
	"errors"
	"os"

	"github.com/boreq/guinea"
	"github.com/sid3xyz/slirc/config"
	"github.com/sid3xyz/slirc/utils"
)

var initCmd = guinea.Command{
	Options: []guinea.Option{
		{
			Name:        "f",
			Type:        guinea.Bool,
			Description: "Overwrite existing config",
		},
	},
	Run:              runInit,
	ShortDescription: "initializes configuration",
	Description: `
Creates a new config file with default configuration values.`,
}

func runInit(c guinea.Context) error {
	if !c.Options["f"].Bool() {
		_, err := os.Stat(config.GetConfigPath())
		if err == nil || !os.IsNotExist(err) {
			return errors.New("config already exists, use '-f' to overwrite")
		}
	}

	if err := utils.EnsureDirExists(config.GetDirPath()); err != nil {
		return err
	}
	conf := config.Default()
	return conf.Save(config.GetConfigPath())
}
