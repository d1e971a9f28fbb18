// Package stream feeds framed lines from an io.Reader through a line parser
// and hands each decoded message to a handler, in order.
package stream

import (
	"bufio"
	"context"
	"io"
	"net/textproto"
	"strings"

	"github.com/pkg/errors"
	"github.com/ynotnauk/go-irc/entities"
	"github.com/ynotnauk/go-irc/interfaces"
	"github.com/ynotnauk/go-irc/logging"
	"go.uber.org/zap"
)

const (
	defaultBufferSize int = 64
)

var (
	ErrNilParser   error = errors.New("parser cannot be nil")
	ErrNilHandler  error = errors.New("handler cannot be nil")
	ErrLineTooLong error = errors.New("line exceeds maximum length")
)

type Stats struct {
	Lines     int `json:"lines"`
	Decoded   int `json:"decoded"`
	Blank     int `json:"blank"`
	Malformed int `json:"malformed"`
}

// HandlerFunc adapts a plain function to interfaces.MessageHandler.
type HandlerFunc func(lineNumber int, message *entities.IrcMessage) error

func (f HandlerFunc) HandleMessage(lineNumber int, message *entities.IrcMessage) error {
	return f(lineNumber, message)
}

type Option func(r *Reader)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStrict makes Run stop at the first malformed line.
func WithStrict(strict bool) Option {
	return func(r *Reader) {
		r.strict = strict
	}
}

// WithMaxLineLength rejects lines longer than n bytes. Zero disables the check.
func WithMaxLineLength(n int) Option {
	return func(r *Reader) {
		r.maxLineLength = n
	}
}

// WithBufferSize sets how many read lines may wait for the parser.
func WithBufferSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

type Reader struct {
	bufferSize    int
	handler       interfaces.MessageHandler
	logger        *zap.Logger
	maxLineLength int
	parser        interfaces.LineParser
	strict        bool
}

type rawLine struct {
	number int
	text   string
}

// Run reads source until EOF, an error or cancellation of ctx. Lines are
// framed on LF with an optional preceding CR. The returned stats cover every
// line handled before Run stopped.
func (r *Reader) Run(ctx context.Context, source io.Reader) (*Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan rawLine, r.bufferSize)
	readErr := make(chan error, 1)
	r.startLineReader(ctx, source, lines, readErr)
	stats := &Stats{}
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// The reader always reports why it stopped before closing
				err := <-readErr
				if errors.Is(err, io.EOF) {
					return stats, nil
				}
				if ctxErr := ctx.Err(); ctxErr != nil {
					return stats, ctxErr
				}
				return stats, errors.Wrap(err, "failed to read line")
			}
			if err := r.decodeLine(line, stats); err != nil {
				return stats, err
			}
		}
	}
}

func (r *Reader) decodeLine(line rawLine, stats *Stats) error {
	stats.Lines++
	if strings.TrimLeft(line.text, " ") == "" {
		stats.Blank++
		return nil
	}
	if r.maxLineLength > 0 && len(line.text) > r.maxLineLength {
		return r.malformedLine(line, ErrLineTooLong, stats)
	}
	message, err := r.parser.Parse(line.text)
	if err != nil {
		return r.malformedLine(line, err, stats)
	}
	stats.Decoded++
	r.logger.Debug("decoded line",
		zap.Int("line", line.number),
		zap.String("command", message.Command),
		zap.Int("params", len(message.Params)),
	)
	if err := r.handler.HandleMessage(line.number, message); err != nil {
		return errors.Wrapf(err, "line %d: handler failed", line.number)
	}
	return nil
}

func (r *Reader) malformedLine(line rawLine, err error, stats *Stats) error {
	stats.Malformed++
	if r.strict {
		return errors.Wrapf(err, "line %d", line.number)
	}
	r.logger.Warn("skipping malformed line",
		zap.Int("line", line.number),
		zap.String("raw", line.text),
		zap.Error(err),
	)
	return nil
}

func (r *Reader) startLineReader(ctx context.Context, source io.Reader, lines chan<- rawLine, readErr chan<- error) {
	r.logger.Debug("starting line reader")
	go func() {
		var err error
		defer func() {
			readErr <- err
			close(lines)
			r.logger.Debug("line reader has closed")
		}()
		tp := textproto.NewReader(bufio.NewReader(source))
		lineNumber := 0
		for {
			var line string
			line, err = tp.ReadLine()
			if err != nil {
				return
			}
			lineNumber++
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case lines <- rawLine{number: lineNumber, text: line}:
			}
		}
	}()
}

func NewReader(parser interfaces.LineParser, handler interfaces.MessageHandler, options ...Option) (*Reader, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if handler == nil {
		return nil, ErrNilHandler
	}
	reader := &Reader{
		bufferSize: defaultBufferSize,
		handler:    handler,
		logger:     logging.Nop(),
		parser:     parser,
	}
	for _, option := range options {
		option(reader)
	}
	return reader, nil
}
