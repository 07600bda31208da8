package logcontext

import (
	"context"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

type contextKey int

const loggerKey contextKey = iota

func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext never returns nil; without a stored logger it returns one
// that discards everything.
func LoggerFromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(logrus.FieldLogger); ok {
			return logger
		}
	}

	return newNullLogger()
}

func newNullLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = ioutil.Discard

	return logger
}
