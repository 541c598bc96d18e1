package housekeeper

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Link a directory of dotfiles into your home directory"
	MsgRootUse   = "housekeeper <dotfiles-directory>"

	// Flag descriptions
	MsgFlagHome    = "Directory to link into (default is your home directory)"
	MsgFlagForce   = "Replace plain files that are in the way"
	MsgFlagDryRun  = "Report what would be linked without changing anything"
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagOutput  = "Report format: text, yaml or toml"
	MsgFlagConfig  = "Config file (TOML)"
	MsgFlagLogFile = "Also write JSON logs to this file"
	MsgFlagNoColor = "Disable colored output"

	// Error messages
	MsgErrArgs    = "expected exactly one dotfiles directory, got %d"
	MsgErrInstall = "failed to link dotfiles: %w"
	MsgErrRender  = "failed to render report: %w"

	// Debug messages
	MsgDebugConfig = "Configuration loaded"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimRight(msgExampleRaw, "\n")
)
