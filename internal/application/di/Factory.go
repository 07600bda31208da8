package di

import (
	"io/ioutil"

	"github.com/muonsoft/runscan/internal/application/config"
	"github.com/muonsoft/runscan/internal/corpus"
	"github.com/muonsoft/runscan/internal/report"
	"github.com/muonsoft/runscan/internal/scanner"
	"github.com/sirupsen/logrus"
)

type Factory struct {
	configuration *config.Configuration
	logger        logrus.FieldLogger
}

func NewFactory(configuration *config.Configuration) *Factory {
	logger := createLogger(configuration)

	return &Factory{
		configuration: configuration,
		logger:        logger,
	}
}

func (factory *Factory) GetLogger() logrus.FieldLogger {
	return factory.logger
}

func (factory *Factory) GetConfiguration() *config.Configuration {
	return factory.configuration
}

// StrategyName resolves an empty name to the configured strategy.
func (factory *Factory) StrategyName(name string) string {
	if name == "" {
		name = factory.configuration.Strategy
	}
	if name == "" {
		name = scanner.Default
	}

	return name
}

func (factory *Factory) CreateSerializer() report.Serializer {
	return report.NewSerializer(report.Options{Color: factory.configuration.Color})
}

// CreateCorpusGenerator fills unset sizes from the configuration. The seed is
// taken as given, zero included.
func (factory *Factory) CreateCorpusGenerator(options corpus.Options) *corpus.Generator {
	if options.Samples <= 0 {
		options.Samples = factory.configuration.Samples
	}
	if options.MaxLength <= 0 {
		options.MaxLength = factory.configuration.MaxLength
	}

	return corpus.New(options)
}

func (factory *Factory) CreateVerifier() (*scanner.Verifier, error) {
	return scanner.NewVerifier(scanner.Names()...)
}

func createLogger(configuration *config.Configuration) *logrus.Logger {
	logger := logrus.New()
	if configuration.DryRun {
		logger.Out = ioutil.Discard
		return logger
	}

	logger.SetLevel(configuration.Level())

	if configuration.LogFormat == config.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	return logger
}
