package main

import (
	"os"

	"github.com/alvinbaena/pwd-meter/internal/api"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Server only entrypoint for containers. Every setting comes from the environment or a .env
// file, see api.Config.
func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if util.IsTerminal(os.Stdout) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	cfg, err := api.LoadConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	if err = api.Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
