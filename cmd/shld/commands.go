package shld

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/shld/internal/version"
	"github.com/arthur-debert/shld/pkg/config"
	"github.com/arthur-debert/shld/pkg/expander"
	"github.com/arthur-debert/shld/pkg/filesystem"
	"github.com/arthur-debert/shld/pkg/logging"
	"github.com/arthur-debert/shld/pkg/output"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		force     bool
		strict    bool
		noShebang bool
		marker    string
		cfgFile   string
	)

	rootCmd := &cobra.Command{
		Use:     "shld [flags] <script> [output]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Per-run overrides from flags the user actually set.
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("strict") {
				overrides["expand.strict"] = strict
			}
			if cmd.Flags().Changed("no-shebang-check") {
				overrides["expand.check_shebang"] = !noShebang
			}
			if cmd.Flags().Changed("ignore-marker") {
				overrides["expand.ignore_marker"] = marker
			}

			cfg, err := config.Load(cfgFile, overrides)
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			script := args[0]

			// A .shld.toml next to the script is the most specific
			// setting source and wins over flags.
			expandCfg, err := config.MergeScriptLocal(fsys, filepath.Dir(script), cfg.Expand)
			if err != nil {
				return err
			}

			log.Info().Str("script", script).Msg("Expanding script")
			data, err := expander.New(fsys, expandCfg).Expand(script)
			if err != nil {
				return err
			}

			if len(args) == 2 {
				return output.Write(fsys, args[1], data, force)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	rootCmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	rootCmd.Flags().BoolVar(&noShebang, "no-shebang-check", false, MsgFlagNoShebang)
	rootCmd.Flags().StringVar(&marker, "ignore-marker", "", MsgFlagIgnoreMarker)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shld version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			fsys := filesystem.NewOS()
			path := config.DefaultUserConfigPath()
			if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagGenConfigWrite)

	return cmd
}
