package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if isHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger, logFile, err := newLogger(opts, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot configure logging")
	}
	log.Logger = logger

	err = run(opts)

	// log.Fatal exits without running defers.
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Stopped")
	}
}

// run validates the content and templates, then either exports the site or
// serves it until the server fails.
func run(opts *Options) error {
	if err := validateContent(site); err != nil {
		return errors.Wrap(err, "refusing to start")
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return errors.Wrap(err, "cannot load templates")
	}

	if opts.Export != "" {
		return errors.Wrap(exportSite(opts.Export, tmpl, site), "export failed")
	}

	gin.SetMode(opts.GinMode)
	r, err := newRouter(tmpl, site)
	if err != nil {
		return errors.Wrap(err, "cannot set up routes")
	}

	log.Info().Str("listen_addr", ":"+opts.Port).Str("gin_mode", opts.GinMode).Msg("Starting server")
	return errors.Wrap(r.Run(":"+opts.Port), "server stopped")
}
