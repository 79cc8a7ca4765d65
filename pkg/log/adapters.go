package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// GooseLogger adapts zerolog to goose's Logger interface.
type GooseLogger struct {
	logger zerolog.Logger
}

func NewGooseLoggerFromCtx(ctx context.Context) *GooseLogger {
	return &GooseLogger{logger: FromCtx(ctx).With().Str("component", "goose").Logger()}
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Fatal().Msgf(format, v...)
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// BadgerLogger adapts zerolog to badger's Logger interface. Badger is chatty
// at info level, so its levels are shifted down by one.
type BadgerLogger struct {
	logger zerolog.Logger
}

func NewBadgerLoggerFromCtx(ctx context.Context) *BadgerLogger {
	return &BadgerLogger{logger: FromCtx(ctx).With().Str("component", "badger").Logger()}
}

func (b *BadgerLogger) Errorf(format string, v ...interface{}) {
	b.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (b *BadgerLogger) Warningf(format string, v ...interface{}) {
	b.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (b *BadgerLogger) Infof(format string, v ...interface{}) {
	b.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (b *BadgerLogger) Debugf(format string, v ...interface{}) {
	b.logger.Trace().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
