package xml2struct

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Convert XML documents into nested structures"
	MsgConvertShort    = "Convert XML files to JSON, YAML, TOML or a tree"
	MsgConfigShort     = "Show the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Output
	MsgVersionFormat = "xml2struct %s (commit %s, built %s)\n"
	MsgManWritten    = "Man pages written to %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrUnknownKeys  = "unknown key style %q (valid: symbolic, classic)"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrGenerateMan  = "failed to generate man pages: %w"
	MsgErrCreateManDir = "failed to create man directory: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Additional config file (TOML)"
	MsgFlagFormat     = "Output format (json, yaml, toml, tree)"
	MsgFlagDefaultExt = "Extension appended to paths that do not exist as given"
	MsgFlagKeys       = "Reserved key names: symbolic (@attributes, #text) or classic (Attributes, Text)"
	MsgFlagDefaults   = "Print the embedded default configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/man-long.txt
	msgManLongRaw string
	MsgManLong    = strings.TrimSpace(msgManLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
