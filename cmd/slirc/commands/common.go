package commands

import (
	"github.com/sid3xyz/slirc/config"
)

func GetConfig() (*config.Config, error) {
	path := config.GetConfigPath()
	return config.Get(path)
}
