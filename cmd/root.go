package cmd

import (
	"fmt"

	"codesnap/pkg/logging"
	"codesnap/pkg/snapshot"
	"codesnap/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootLogger is supplied by Execute and shared with subcommands.
var rootLogger *zap.Logger

// RootCmd is the base command. Running it without a subcommand produces a
// snapshot of the target directory.
var RootCmd = &cobra.Command{
	Use:   "codesnap",
	Short: "Codesnap flattens a codebase into a single text snapshot",
	Long: `Codesnap walks a directory tree, filters ignored, sensitive and binary
files, and writes a single text artifact combining the directory structure
with the concatenated file contents, ready to paste into an LLM prompt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("debug") {
			return nil
		}
		if err := logging.Setup(true, "Codesnap", version.Get().Version); err != nil {
			return fmt.Errorf("failed to set up debug logging: %w", err)
		}
		rootLogger = logging.Logger
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := snapshot.DefaultConfig()
		cfg.Directory = viper.GetString("dir")
		cfg.Output = viper.GetString("output")
		cfg.Extensions = viper.GetStringSlice("ext")
		cfg.StripComments = viper.GetBool("strip-comments")
		cfg.StripWhitespace = viper.GetBool("strip-whitespace")
		cfg.CountTokens = viper.GetBool("tokens")
		cfg.Clipboard = viper.GetBool("clipboard")

		if err := snapshot.Run(cfg, rootLogger); err != nil {
			return fmt.Errorf("snapshot failed: %w", err)
		}
		return nil
	},
}

// Execute wires the provided logger into the command tree and runs it.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	_ = viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("debug"))

	flags := RootCmd.Flags()
	flags.StringP("dir", "d", ".", "Directory to snapshot")
	flags.StringP("output", "o", "output.txt", "Output file, written at the target root")
	flags.StringSlice("ext", nil, "Only include files with these extensions (e.g. .js,.ts); empty keeps all")
	flags.Bool("strip-comments", false, "Strip comments from scripting-language files")
	flags.Bool("strip-whitespace", false, "Collapse whitespace runs in file contents")
	flags.Bool("tokens", false, "Report the token count of the snapshot")
	flags.BoolP("clipboard", "c", false, "Copy the snapshot to the clipboard")

	for _, name := range []string{"dir", "output", "ext", "strip-comments", "strip-whitespace", "tokens", "clipboard"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}
