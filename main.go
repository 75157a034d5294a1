package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hex/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	// Interactive play talks to the user directly; keep the log quiet.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	experiment := flag.Bool("experiment", false,
		"run the parallel speedup experiment instead of the console game")
	flag.Parse()

	if *experiment {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if err := experiments.RunSpeedupExperiment(); err != nil {
			log.Fatal().Err(err).Msg("speedup experiment failed")
		}
		return
	}

	runConsole(os.Stdin, os.Stdout)
}
