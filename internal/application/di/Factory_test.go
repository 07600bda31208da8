package di

import (
	"io/ioutil"
	"testing"

	"github.com/muonsoft/runscan/internal/application/config"
	"github.com/muonsoft/runscan/internal/corpus"
	"github.com/muonsoft/runscan/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactory_JSONDebugConfiguration_LoggerConfigured(t *testing.T) {
	factory := NewFactory(&config.Configuration{LogLevel: "debug", LogFormat: config.LogFormatJSON})

	logger := factory.GetLogger().(*logrus.Logger)

	assert.Equal(t, logrus.DebugLevel, logger.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewFactory_DryRun_LoggerDiscards(t *testing.T) {
	factory := NewFactory(&config.Configuration{DryRun: true, LogLevel: "info"})

	logger := factory.GetLogger().(*logrus.Logger)

	assert.Equal(t, ioutil.Discard, logger.Out)
}

func TestFactory_StrategyName_FallsBackToConfiguration(t *testing.T) {
	factory := NewFactory(&config.Configuration{LogLevel: "info", Strategy: "fold"})

	assert.Equal(t, "fold", factory.StrategyName(""))
	assert.Equal(t, "array", factory.StrategyName("array"))
}

func TestFactory_CreateCorpusGenerator_ConfigurationFillsOptions(t *testing.T) {
	factory := NewFactory(&config.Configuration{LogLevel: "info", Samples: 3, MaxLength: 5, Seed: 9})

	samples := factory.CreateCorpusGenerator(corpus.Options{}).Generate()

	assert.Len(t, samples, len(corpus.Literals())+3)
}

func TestFactory_CreateSerializerAndVerifier_Ready(t *testing.T) {
	factory := NewFactory(&config.Configuration{LogLevel: "info"})

	_, err := factory.CreateSerializer().Serialize(report.Report{}, report.FormatJSON)
	assert.NoError(t, err)

	verifier, err := factory.CreateVerifier()
	require.NoError(t, err)
	assert.Empty(t, verifier.Check("abcabcbb"))
}
