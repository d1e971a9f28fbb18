package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole string = "console"
	FormatJSON    string = "json"
)

var (
	ErrNilWriter     error = errors.New("log writer cannot be nil")
	ErrUnknownFormat error = errors.New("unknown log format")
)

// New builds a logger writing to out. The CLI passes stderr so that decoded
// output on stdout stays clean.
func New(out io.Writer, level string, format string) (*zap.Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}
	parsedLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	var encoder zapcore.Encoder
	switch strings.ToLower(format) {
	case "", FormatConsole:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(parsedLevel))
	return zap.New(core), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
