// Command ringcheck verifies the compile-time field and root-of-unity
// constants in package params and reports the result as structured log
// output, the same verify-then-log shape a process entry point uses for
// any fallible startup step.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lattice384/ringq/params"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	log.Info().
		Int("m", params.M).
		Int("n", params.N).
		Int("p", params.P).
		Int("k", params.K).
		Msg("verifying ring constants")

	if err := params.Verify(); err != nil {
		log.Error().Err(err).Msg("ring constant verification failed")
		os.Exit(1)
	}

	log.Info().Msg("ring constants verified")
}
