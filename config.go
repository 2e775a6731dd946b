package main

import (
	"github.com/jessevdk/go-flags"
)

// Options are read from the command line, falling back to the environment
// (a .env file is loaded first) and then to the defaults below.
type Options struct {
	Port     string `long:"port" env:"PORT" default:"8080" description:"port to listen on"`
	GinMode  string `long:"gin-mode" env:"GIN_MODE" default:"release" choice:"debug" choice:"release" choice:"test" description:"gin framework mode"`
	LogLevel string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"zerolog level (trace, debug, info, warn, error)"`
	LogFile  string `long:"log-file" env:"LOG_FILE" description:"also write logs to this file, rotated"`
	Export   string `long:"export" env:"EXPORT_DIR" description:"write the site as static files to this directory and exit"`
}

func parseOptions(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Portfolio site"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

func isHelp(err error) bool {
	fe, ok := err.(*flags.Error)
	return ok && fe.Type == flags.ErrHelp
}
