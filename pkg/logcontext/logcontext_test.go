package logcontext

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext_StoredLogger_Returned(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := WithLogger(context.Background(), logger.WithField("traceId", "abc"))

	LoggerFromContext(ctx).Info("scanned")

	if assert.Len(t, hook.Entries, 1) {
		assert.Equal(t, "scanned", hook.LastEntry().Message)
		assert.Equal(t, "abc", hook.LastEntry().Data["traceId"])
	}
}

func TestLoggerFromContext_NoLogger_DiscardingLogger(t *testing.T) {
	logger := LoggerFromContext(context.Background())

	assert.NotNil(t, logger)
	assert.IsType(t, &logrus.Logger{}, logger)
}
