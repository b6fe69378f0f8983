package cli

import (
	"fmt"

	"github.com/arthur-debert/dot/internal/version"
	"github.com/arthur-debert/dot/pkg/commands"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			return commands.Init(opts)
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <paths...>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.prepare(cmd)
			if err != nil {
				return err
			}

			results, err := commands.Add(commands.AddOptions{Options: opts, Paths: args})
			logger := logging.GetLogger("cli.add")
			logger.Info().Int("added", len(results)).Msg("Add finished")
			return err
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <files...>",
		Aliases: []string{"rm"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: MsgRemoveExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.prepare(cmd)
			if err != nil {
				return err
			}

			results, err := commands.Remove(commands.RemoveOptions{Options: opts, Targets: args})
			logger := logging.GetLogger("cli.remove")
			logger.Info().Int("removed", len(results)).Msg("Remove finished")
			return err
		},
	}
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: MsgSyncShort,
		Long:  MsgSyncLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			_, err = commands.Sync(opts)
			return err
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.prepare(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Status(opts)
			if err != nil {
				return err
			}
			if err := a.renderer.RenderStatus(result); err != nil {
				return err
			}

			if check && !result.UpToDate() {
				return &exitError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, info.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, info.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, info.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(dot completion bash)

Zsh:
  $ dot completion zsh > "${fpath[1]}/_dot"

Fish:
  $ dot completion fish | source

PowerShell:
  PS> dot completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
