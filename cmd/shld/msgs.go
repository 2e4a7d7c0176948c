package shld

// Message constants
const (
	MsgRootShort = "Expand source directives in shell scripts into one atomic script"
	MsgRootLong  = `shld expands 'source' and '.' commands in shell scripts to link the
sourced files into a single, self-contained shell script. Output goes to
stdout or the given output file.

It operates recursively: if a sourced fragment sources a library itself,
that source command is expanded too.

To keep a particular source command unexpanded, put the comment
'#shldignore' on the line immediately preceding it.`
	MsgRootExample = `  shld deploy.sh                  # Expanded script to stdout
  shld deploy.sh bundle.sh        # Write to bundle.sh (must not exist)
  shld -f deploy.sh bundle.sh     # Overwrite bundle.sh if present`

	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce        = "Overwrite the output file if it exists"
	MsgFlagStrict       = "Fail when an ignore marker is not followed by a source directive"
	MsgFlagNoShebang    = "Skip validation of the root script's shebang line"
	MsgFlagIgnoreMarker = "Comment token that protects the next source directive"
	MsgFlagConfig       = "Config file path (default $XDG_CONFIG_HOME/shld/config.toml)"

	MsgGenConfigShort   = "Generate the default configuration file"
	MsgGenConfigLong    = "Output the default configuration, fully commented out, to stdout or write it to the user config path."
	MsgGenConfigExample = `  shld gen-config         # Output to stdout
  shld gen-config -w      # Write to $XDG_CONFIG_HOME/shld/config.toml`
	MsgFlagGenConfigWrite = "Write config to the user config path instead of stdout"

	MsgVersionShort = "Print version information"
)
