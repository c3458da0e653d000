package main

import (
	"os"
	"strings"

	"github.com/fgeck/monoff/internal/models"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// stderrWriter looks up os.Stderr on every write, since it may be rebound
// once the parent console is attached.
type stderrWriter struct{}

func (stderrWriter) Write(p []byte) (int, error) {
	return os.Stderr.Write(p)
}

// bootstrapLogging keeps logging silent until the flags are parsed.
func bootstrapLogging() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	log.Logger = zerolog.New(stderrWriter{}).With().Timestamp().Logger()
}

func setupLogging(mode models.Mode, verbose bool) {
	output := zerolog.ConsoleWriter{
		Out:        stderrWriter{},
		TimeFormat: "15:04:05",
		NoColor:    !stderrIsTerminal(),
	}
	output.FormatLevel = func(i interface{}) string {
		if s, ok := i.(string); ok {
			return strings.ToUpper(s)
		}
		return ""
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	// Message boxes are the only user channel without a console.
	switch {
	case mode == models.ModeGraphical:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

func stderrIsTerminal() bool {
	if os.Stderr == nil {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
