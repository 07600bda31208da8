package application

import (
	"io/ioutil"
	"strings"

	"github.com/muonsoft/runscan/internal/report"
	"github.com/muonsoft/runscan/internal/scanner"
	"github.com/muonsoft/runscan/pkg/logcontext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	strategy string
	format   string
	file     string
	all      bool
}

func (app *application) newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	command := &cobra.Command{
		Use:   "scan [input]",
		Short: "Prints the longest run of the input without repeated characters",
		Long: "Prints the longest run of the input without repeated characters.\n" +
			"The input is taken from the argument or from --file ('-' reads standard input);\n" +
			"one trailing newline of file input is dropped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return app.scan(command, args, flags)
		},
	}
	command.Flags().StringVarP(&flags.strategy, "strategy", "s", "", "scanning strategy, one of: "+strings.Join(scanner.Names(), ", "))
	command.Flags().StringVarP(&flags.format, "format", "f", "", "output format, one of: "+strings.Join(report.Formats, ", "))
	command.Flags().StringVar(&flags.file, "file", "", "read input from file, '-' for standard input")
	command.Flags().BoolVarP(&flags.all, "all", "a", false, "list every run of maximal length")

	return command
}

func (app *application) scan(command *cobra.Command, args []string, flags *scanFlags) error {
	ctx := app.commandContext(command)
	logger := logcontext.LoggerFromContext(ctx)

	input, err := app.readInput(command, args, flags.file)
	if err != nil {
		return err
	}

	strategyName := app.factory.StrategyName(flags.strategy)
	result, err := scanner.Execute(scanner.Request{Input: input, Strategy: strategyName})
	if err != nil {
		return errors.WithMessage(err, "scan failed")
	}

	scanReport := report.New(strategyName, *input, result)
	if flags.all {
		scanReport = scanReport.WithRuns(scanner.AllLongestRuns(*input))
	}

	format := flags.format
	if format == "" {
		format = app.factory.GetConfiguration().Format
	}
	data, err := app.factory.CreateSerializer().Serialize(scanReport, format)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"strategy":    strategyName,
		"inputLength": len(*input),
		"length":      result.Length,
	}).Debug("Input scanned")

	_, err = command.OutOrStdout().Write(data)

	return err
}

// readInput returns nil when no input was given at all.
func (app *application) readInput(command *cobra.Command, args []string, file string) (*string, error) {
	if file != "" && len(args) > 0 {
		return nil, errors.New("input argument and --file are mutually exclusive")
	}

	if len(args) == 1 {
		return &args[0], nil
	}
	if file == "" {
		return nil, nil
	}

	var data []byte
	var err error
	if file == "-" {
		data, err = ioutil.ReadAll(command.InOrStdin())
	} else {
		data, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read input from '%s'", file)
	}

	input := strings.TrimSuffix(string(data), "\n")

	return &input, nil
}
