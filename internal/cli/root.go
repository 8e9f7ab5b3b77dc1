// Package cli implements the patientview command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/goliatone/go-patientview/internal/config"
	"github.com/goliatone/go-patientview/internal/logging"
	"github.com/goliatone/go-patientview/internal/prompt"
)

// Deps carries the process-level collaborators so tests can swap them.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Prompter    prompt.Driver
	Interactive func() bool
}

func defaultDeps() Deps {
	return Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Prompter: prompt.NewSurveyDriver(),
		Interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// app is the state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	deps Deps
	v    *viper.Viper
	cfg  *config.Config
	log  zerolog.Logger
}

// Execute runs the CLI against os.Args and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd(defaultDeps())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	fallback := defaultDeps()
	if deps.Stdout == nil {
		deps.Stdout = fallback.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = fallback.Stderr
	}
	if deps.Prompter == nil {
		deps.Prompter = fallback.Prompter
	}
	if deps.Interactive == nil {
		deps.Interactive = fallback.Interactive
	}

	a := &app{deps: deps, v: viper.New(), log: zerolog.Nop()}
	var configFile string

	cmd := &cobra.Command{
		Use:           "patientview",
		Short:         "Render people rosters with computed ages as HTML",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, configFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(a.deps.Stderr, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("cli: logger: %w", err)
			}
			a.cfg = cfg
			a.log = logger
			a.log.Debug().
				Str("config", configFile).
				Bool("compact", cfg.Compact).
				Int("block_size", cfg.BlockSize).
				Msg("configuration loaded")
			return nil
		},
	}
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("indent", "    ", "indentation used for non-compact HTML")
	flags.Bool("compact", false, "render HTML on a single line")
	flags.String("table-attrs", "", `attributes for the <table> tag, e.g. 'class="roster"'`)
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("indent", flags.Lookup("indent"))
	_ = a.v.BindPFlag("compact", flags.Lookup("compact"))
	_ = a.v.BindPFlag("table_attrs", flags.Lookup("table-attrs"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.AddCommand(
		ageCmd(a),
		tableCmd(a),
		pageCmd(a),
		catCmd(a),
	)

	return cmd
}
