package main

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologLogger is the thin logger every subcommand threads through,
// grounded on weisyn-go-weisyn's pattern of building one logger in a
// PersistentPreRunE and passing it down rather than using a package-level
// global logger.
type zerologLogger struct {
	log zerolog.Logger
}

func newLogger(verbose bool) zerologLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerologLogger{
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).
			With().Timestamp().Logger(),
	}
}

func (l zerologLogger) encodeResult(r timedResult, flags []string) {
	l.log.Debug().
		Int("bytes_in", r.bytesIn).
		Int("bytes_out", r.bytesOut).
		Dur("elapsed", r.elapsed).
		Strs("flags", flags).
		Msg("encoded frame")
}

func (l zerologLogger) decodeResult(r timedResult, flags []string) {
	l.log.Debug().
		Int("bytes_in", r.bytesIn).
		Int("bytes_out", r.bytesOut).
		Dur("elapsed", r.elapsed).
		Strs("flags", flags).
		Msg("decoded frame")
}
