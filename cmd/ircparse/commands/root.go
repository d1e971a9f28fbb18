package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ynotnauk/go-irc/config"
	"github.com/ynotnauk/go-irc/logging"
	"go.uber.org/zap"
)

// app carries the resolved settings from the root command to subcommands.
type app struct {
	config       *config.Config
	configPath   string
	logger       *zap.Logger
	logLevel     string
	outputFormat string
	showSource   bool
	showTags     bool
}

// NewRootCmd builds the ircparse command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "ircparse",
		Short: "Decode IRC protocol lines",
		Long: `ircparse decodes IRC protocol lines, including IRCv3 message-tags,
into tags, prefix, command and parameters.

A line must start with a tag block (@...) or a prefix (:...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVarP(&a.outputFormat, "output", "o", "", "Output format (text, json)")
	flags.BoolVar(&a.showTags, "tags", false, "Split the tag block into keys and values")
	flags.BoolVar(&a.showSource, "source", false, "Split the prefix into nick, user and host")

	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newStreamCmd(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.outputFormat
	}
	if flags.Changed("tags") {
		cfg.Output.Tags = a.showTags
	}
	if flags.Changed("source") {
		cfg.Output.Source = a.showSource
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	a.config = cfg
	a.logger = logger
	return nil
}
