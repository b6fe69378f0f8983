package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Track dotfiles in a repository and link them back into place"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgInitShort       = "Create an empty manifest in the repository"
	MsgAddShort        = "Move files into the repository and link them back"
	MsgRemoveShort     = "Stop tracking files and move them back"
	MsgSyncShort       = "Link every tracked file into place"
	MsgStatusShort     = "Show the state of every tracked file"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "dot version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet   = "Only print warnings, conflicts and errors"
	MsgFlagFormat  = "Output format (auto, term, text, json)"
	MsgFlagRepo    = "Repository directory (default: $DOT_REPO or the working directory)"
	MsgFlagCheck   = "Exit with code 1 when any file is in conflict"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/remove-example.txt
	msgRemoveExampleRaw string
	MsgRemoveExample    = strings.TrimRight(msgRemoveExampleRaw, "\n")

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")
)
