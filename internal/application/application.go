package application

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/muonsoft/runscan/internal/application/config"
	"github.com/muonsoft/runscan/internal/application/di"
	"github.com/muonsoft/runscan/pkg/logcontext"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Options struct {
	Version   string
	BuildTime string
	Arguments []string
	Input     io.Reader
	Output    io.Writer
}

type Option func(options *Options)

func Version(version string) Option {
	return func(options *Options) {
		options.Version = version
	}
}

func BuildTime(buildTime string) Option {
	return func(options *Options) {
		options.BuildTime = buildTime
	}
}

// Arguments replaces os.Args[1:].
func Arguments(arguments ...string) Option {
	return func(options *Options) {
		options.Arguments = arguments
	}
}

func Input(input io.Reader) Option {
	return func(options *Options) {
		options.Input = input
	}
}

func Output(output io.Writer) Option {
	return func(options *Options) {
		options.Output = output
	}
}

func Execute(options ...Option) error {
	opts := &Options{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
	for _, setOption := range options {
		setOption(opts)
	}

	app := &application{options: opts}
	command := app.newRootCommand()
	if opts.Arguments != nil {
		command.SetArgs(opts.Arguments)
	}
	command.SetIn(opts.Input)
	command.SetOut(opts.Output)

	return command.ExecuteContext(context.Background())
}

type application struct {
	options    *Options
	configFile string
	factory    *di.Factory
}

func (app *application) newRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:           "runscan",
		Short:         "Finds the longest run of a string without repeated characters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, args []string) error {
			return app.initialize()
		},
	}
	command.PersistentFlags().StringVarP(&app.configFile, "config", "c", "", "path to YAML configuration file")

	command.AddCommand(
		app.newScanCommand(),
		app.newVerifyCommand(),
		app.newStrategiesCommand(),
		app.newVersionCommand(),
	)

	return command
}

func (app *application) initialize() error {
	configuration, err := config.Load(app.configFile)
	if err != nil {
		return err
	}
	app.factory = di.NewFactory(configuration)
	app.factory.GetLogger().WithFields(configuration.Dump()).Debug("Configuration loaded")

	return nil
}

// commandContext carries a logger tagged with the command and a fresh trace id.
func (app *application) commandContext(command *cobra.Command) context.Context {
	logger := app.factory.GetLogger().WithFields(logrus.Fields{
		"command": command.Name(),
		"traceId": uuid.New().String(),
	})

	return logcontext.WithLogger(command.Context(), logger)
}
