// Package cli builds the dot command tree
package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dot/internal/version"
	"github.com/arthur-debert/dot/pkg/commands"
	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// exitError ends the process with code without printing anything
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// app holds the flags and the per-invocation state shared by commands
type app struct {
	verbosity int
	quiet     bool
	format    string
	repo      string

	config   *config.Config
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", config.FormatAuto, MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.repo, "repo", "", MsgFlagRepo)

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newSyncCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Run executes the command line and returns the process exit code.
// Errors are rendered on stderr in the configured format.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if stderrors.As(err, &exit) {
		return exit.code
	}

	log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	_ = a.errorRenderer(stderr).RenderError(err)
	return 1
}

// prepare resolves the repository and configuration and builds the
// renderer. Flags override configuration.
func (a *app) prepare(cmd *cobra.Command) (commands.Options, error) {
	wd, err := os.Getwd()
	if err != nil {
		return commands.Options{}, errors.Wrap(err, errors.ErrIO, "failed to get working directory")
	}
	repo := a.repo
	if repo == "" {
		repo = os.Getenv(paths.EnvRepo)
	}
	repoDir := paths.NewResolver(wd).Absolute(repo)

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}
	if cmd.Flags().Changed("quiet") {
		overrides["output.quiet"] = a.quiet
	}

	cfg, err := config.Load(config.LoadOptions{RepoDir: repoDir, Overrides: overrides})
	if err != nil {
		return commands.Options{}, err
	}
	a.config = cfg

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return commands.Options{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	if a.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout(), cfg.Output.Quiet); err != nil {
		return commands.Options{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to create renderer")
	}

	log.Debug().Str("repo", repoDir).Str("format", format.String()).Msg("Prepared invocation")
	return commands.Options{RepoDir: repoDir, Config: cfg, Reporter: a.renderer}, nil
}

// errorRenderer renders errors in the configured format, falling back to
// plain text when configuration never loaded
func (a *app) errorRenderer(stderr io.Writer) ui.Renderer {
	format := ui.FormatText
	if a.config != nil {
		if f, err := ui.ParseFormat(a.config.Output.Format); err == nil {
			format = f
		}
	}
	r, err := ui.NewRenderer(format, stderr, false)
	if err != nil {
		r, _ = ui.NewRenderer(ui.FormatText, stderr, false)
	}
	return r
}
