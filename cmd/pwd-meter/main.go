package main

import (
	"os"

	"github.com/alvinbaena/pwd-meter/internal/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
