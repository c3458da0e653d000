package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fgeck/monoff/internal/config"
	"github.com/fgeck/monoff/internal/models"
	"github.com/fgeck/monoff/internal/platform"
	"github.com/fgeck/monoff/internal/services/console"
	"github.com/fgeck/monoff/internal/services/monitor"
	"github.com/fgeck/monoff/internal/services/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func init() {
	// cobra would otherwise refuse to run when started from Explorer.
	cobra.MousetrapHelpText = ""
}

// app holds what a single invocation needs once the output channel is known.
type app struct {
	out    console.Service
	poster monitor.Poster
	sleep  runner.SleepFunc
}

func newRootCmd(a *app, ran *bool) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "monoff",
		Short: "Turn off all monitors",
		Long: `monoff asks Windows to power off every attached monitor, optionally after a delay.

The delay may also be set with the MONOFF_DELAY environment variable; the
--delay flag takes precedence. When started from a terminal, messages are
printed there, otherwise they are shown in a message box.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			setupLogging(a.out.Mode(), verbose)

			cfg, err := config.NewParser().Load(cmd.Flags())
			if err != nil {
				log.Error().Err(err).Msg("invalid configuration")
				return err
			}

			log.Debug().
				Uint16("delay_ms", cfg.Delay).
				Str("mode", a.out.Mode().String()).
				Msg("configuration loaded")

			monitorSvc := monitor.New(log.Logger, a.poster)
			return runner.NewWithSleep(log.Logger, monitorSvc, a.sleep).Run(cmd.Context(), *cfg)
		},
	}

	cmd.Flags().Uint16P(config.DelayKey, "d", models.DefaultDelayMS, "milliseconds to wait before turning off the monitors")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")

	return cmd
}

// run executes the command for args and reports the outcome through the
// already resolved output channel. It returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	var ran bool
	var stdout, stderr bytes.Buffer

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(a, &ran)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(ctx)

	var argErr *models.ArgumentError
	switch {
	case err == nil && !ran:
		// --help or --version
		a.out.Report(strings.TrimRight(stdout.String(), "\n"), models.SeverityInfo)
		return exitOK
	case err == nil:
		return exitOK
	case !ran || errors.As(err, &argErr):
		a.out.Report(usageError(cmd, err), models.SeverityError)
		return exitUsage
	default:
		a.out.Report(fmt.Sprintf("Error turning off monitors: %v", err), models.SeverityError)
		return exitFailure
	}
}

func usageError(cmd *cobra.Command, err error) string {
	return fmt.Sprintf("error: %v\n\nFor more information, try '%s --help'.", err, cmd.CommandPath())
}

// Execute resolves the output channel, runs monoff and returns the exit code.
func Execute() int {
	bootstrapLogging()

	p := platform.New()
	if !p.Supported() {
		fmt.Fprintln(os.Stderr, platform.ErrUnsupported)
		return exitFailure
	}

	a := &app{
		out:    console.Resolve(p, log.Logger),
		poster: p,
		sleep:  time.Sleep,
	}
	return a.run(context.Background(), os.Args[1:])
}
