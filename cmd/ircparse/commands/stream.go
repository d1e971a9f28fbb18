package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ynotnauk/go-irc/parser"
	"github.com/ynotnauk/go-irc/stream"
	"go.uber.org/zap"
)

func newStreamCmd(a *app) *cobra.Command {
	var strict bool
	var maxLineLength int
	streamCmd := &cobra.Command{
		Use:   "stream [file]",
		Short: "Decode a stream of lines from a file or stdin",
		Long: `Decode every line read from a file, or from stdin when no file is
given. Malformed lines are logged and skipped unless --strict is set.

Example:
  ircparse stream --strict session.log`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				a.config.Stream.Strict = strict
			}
			if cmd.Flags().Changed("max-line-length") {
				a.config.Stream.MaxLineLength = maxLineLength
			}
			var source io.Reader = cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "failed to open input")
				}
				defer file.Close()
				source = file
				name = args[0]
			}
			reader, err := stream.NewReader(
				parser.New(),
				newRenderer(cmd.OutOrStdout(), a.config.Output),
				stream.WithLogger(a.logger),
				stream.WithStrict(a.config.Stream.Strict),
				stream.WithMaxLineLength(a.config.Stream.MaxLineLength),
				stream.WithBufferSize(a.config.Stream.BufferSize),
			)
			if err != nil {
				return err
			}
			a.logger.Info("decoding stream", zap.String("source", name), zap.Bool("strict", a.config.Stream.Strict))
			stats, err := reader.Run(cmd.Context(), source)
			fmt.Fprintf(cmd.ErrOrStderr(), "lines: %d decoded: %d blank: %d malformed: %d\n",
				stats.Lines, stats.Decoded, stats.Blank, stats.Malformed)
			return err
		},
	}
	streamCmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first malformed line")
	streamCmd.Flags().IntVar(&maxLineLength, "max-line-length", 0, "Reject lines longer than this many bytes (0 = unlimited)")
	return streamCmd
}
