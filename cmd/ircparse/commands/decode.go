package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ynotnauk/go-irc/parser"
	"go.uber.org/zap"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <line>...",
		Short: "Decode lines given as arguments",
		Long: `Decode one or more IRC lines given as arguments.

Example:
  ircparse decode ':nick!user@host PRIVMSG #chan :hello world'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newRenderer(cmd.OutOrStdout(), a.config.Output)
			for i, line := range args {
				message, err := parser.Parse(line)
				if err != nil {
					a.logger.Debug("failed to decode argument", zap.Int("argument", i+1), zap.Error(err))
					return errors.Wrapf(err, "argument %d", i+1)
				}
				if err := out.HandleMessage(i+1, message); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
