package config

import (
	"io/ioutil"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/muonsoft/runscan/internal/report"
	"github.com/muonsoft/runscan/internal/scanner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	environmentPrefix = "runscan"

	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultSamples   = 200
	DefaultMaxLength = 64
	maxSamples       = 100000
	maxLength        = 1 << 16
)

// Configuration is read from an optional YAML file and then from RUNSCAN_*
// environment variables, which take precedence.
type Configuration struct {
	ConfigFile string `yaml:"-" envconfig:"CONFIG"`

	DryRun    bool   `yaml:"dryRun" envconfig:"DRY_RUN"`
	LogLevel  string `yaml:"logLevel" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" envconfig:"LOG_FORMAT"`

	Strategy string `yaml:"strategy" envconfig:"STRATEGY"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Color    bool   `yaml:"color" envconfig:"COLOR"`

	Samples   int   `yaml:"samples" envconfig:"SAMPLES"`
	MaxLength int   `yaml:"maxLength" envconfig:"MAX_LENGTH"`
	Seed      int64 `yaml:"seed" envconfig:"SEED"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		LogLevel:  logrus.InfoLevel.String(),
		LogFormat: LogFormatText,
		Strategy:  scanner.Default,
		Format:    report.FormatText,
		Samples:   DefaultSamples,
		MaxLength: DefaultMaxLength,
		Seed:      1,
	}
}

// Load builds the configuration. An empty filename falls back to RUNSCAN_CONFIG;
// when neither is set only defaults and environment are used.
func Load(filename string) (*Configuration, error) {
	configuration := defaultConfiguration()

	err := envconfig.Process(environmentPrefix, configuration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read configuration from environment")
	}
	if filename == "" {
		filename = configuration.ConfigFile
	}

	if filename != "" {
		data, err := ioutil.ReadFile(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read configuration file '%s'", filename)
		}
		err = yaml.Unmarshal(data, configuration)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse configuration file '%s'", filename)
		}
		err = envconfig.Process(environmentPrefix, configuration)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read configuration from environment")
		}
		configuration.ConfigFile = filename
	}

	err = configuration.Validate()
	if err != nil {
		return nil, errors.WithMessage(err, "invalid configuration")
	}

	return configuration, nil
}

func (configuration Configuration) Validate() error {
	return validation.ValidateStruct(&configuration,
		validation.Field(&configuration.LogLevel, validation.Required, validation.By(isLogLevel)),
		validation.Field(&configuration.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
		validation.Field(&configuration.Strategy, validation.In(toInterfaces(scanner.Names())...)),
		validation.Field(&configuration.Format, validation.In(toInterfaces(report.Formats)...)),
		validation.Field(&configuration.Samples, validation.Required, validation.Min(1), validation.Max(maxSamples)),
		validation.Field(&configuration.MaxLength, validation.Required, validation.Min(1), validation.Max(maxLength)),
	)
}

func (configuration Configuration) Level() logrus.Level {
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

func (configuration Configuration) Dump() logrus.Fields {
	return logrus.Fields{
		"configFile": configuration.ConfigFile,
		"dryRun":     configuration.DryRun,
		"logLevel":   configuration.LogLevel,
		"logFormat":  configuration.LogFormat,
		"strategy":   configuration.Strategy,
		"format":     configuration.Format,
		"color":      configuration.Color,
		"samples":    configuration.Samples,
		"maxLength":  configuration.MaxLength,
		"seed":       configuration.Seed,
	}
}

func isLogLevel(value interface{}) error {
	level, _ := value.(string)
	_, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.New("must be a valid log level")
	}

	return nil
}

func toInterfaces(values []string) []interface{} {
	result := make([]interface{}, 0, len(values))
	for _, value := range values {
		result = append(result, value)
	}

	return result
}
