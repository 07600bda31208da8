package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "runscan.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(content), 0o600))

	return filename
}

func TestLoad_NoFileNoEnvironment_Defaults(t *testing.T) {
	configuration, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, defaultConfiguration(), configuration)
	assert.Equal(t, logrus.InfoLevel, configuration.Level())
}

func TestLoad_File_ValuesOverrideDefaults(t *testing.T) {
	filename := writeConfigFile(t, "strategy: array\nformat: json\nlogLevel: debug\nsamples: 10\n")

	configuration, err := Load(filename)

	require.NoError(t, err)
	assert.Equal(t, "array", configuration.Strategy)
	assert.Equal(t, "json", configuration.Format)
	assert.Equal(t, logrus.DebugLevel, configuration.Level())
	assert.Equal(t, 10, configuration.Samples)
	assert.Equal(t, DefaultMaxLength, configuration.MaxLength)
	assert.Equal(t, filename, configuration.ConfigFile)
}

func TestLoad_FileAndEnvironment_EnvironmentWins(t *testing.T) {
	filename := writeConfigFile(t, "strategy: array\nlogFormat: text\n")
	t.Setenv("RUNSCAN_CONFIG", filename)
	t.Setenv("RUNSCAN_STRATEGY", "fold")
	t.Setenv("RUNSCAN_LOG_FORMAT", "json")
	t.Setenv("RUNSCAN_COLOR", "true")

	configuration, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "fold", configuration.Strategy)
	assert.Equal(t, "json", configuration.LogFormat)
	assert.True(t, configuration.Color)
}

func TestLoad_UnknownStrategy_ValidationError(t *testing.T) {
	t.Setenv("RUNSCAN_STRATEGY", "quantum")

	_, err := Load("")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "Strategy")
}

func TestLoad_BadLogLevel_ValidationError(t *testing.T) {
	t.Setenv("RUNSCAN_LOG_LEVEL", "loud")

	_, err := Load("")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid log level")
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration file")
}

func TestLoad_MalformedEnvironmentValue_Error(t *testing.T) {
	t.Setenv("RUNSCAN_SAMPLES", "many")

	_, err := Load("")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration from environment")
}

func TestConfiguration_Dump_ContainsEveryField(t *testing.T) {
	fields := defaultConfiguration().Dump()

	assert.Len(t, fields, 10)
	assert.Equal(t, "hashmap", fields["strategy"])
}

func TestLoad_NonPositiveSizes_ValidationError(t *testing.T) {
	t.Setenv("RUNSCAN_SAMPLES", "-5")
	t.Setenv("RUNSCAN_MAX_LENGTH", "-1")

	_, err := Load("")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MaxLength: must be no less than 1")
	assert.Contains(t, err.Error(), "Samples: must be no less than 1")
}
