package application

import (
	"fmt"

	"github.com/muonsoft/runscan/internal/corpus"
	"github.com/muonsoft/runscan/internal/scanner"
	"github.com/muonsoft/runscan/pkg/logcontext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (app *application) newVerifyCommand() *cobra.Command {
	options := corpus.Options{}

	command := &cobra.Command{
		Use:   "verify",
		Short: "Cross-checks every strategy on a randomized corpus",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			return app.verify(command, options)
		},
	}
	command.Flags().IntVarP(&options.Samples, "samples", "n", 0, "number of random samples (default from configuration)")
	command.Flags().IntVar(&options.MaxLength, "max-length", 0, "maximum sample length (default from configuration)")
	command.Flags().Int64Var(&options.Seed, "seed", 0, "random seed (default from configuration)")

	return command
}

func (app *application) verify(command *cobra.Command, options corpus.Options) error {
	ctx := app.commandContext(command)
	logger := logcontext.LoggerFromContext(ctx)

	verifier, err := app.factory.CreateVerifier()
	if err != nil {
		return err
	}
	if !command.Flags().Changed("seed") {
		options.Seed = app.factory.GetConfiguration().Seed
	}
	logger.WithFields(logrus.Fields{
		"seed":             options.Seed,
		"unseededFamilies": corpus.UnseededFamilies(),
	}).Info("Samples of unseeded families differ between runs with the same seed")

	samples := app.factory.CreateCorpusGenerator(options).Generate()

	var mismatches []scanner.Mismatch
	for _, sample := range samples {
		mismatches = append(mismatches, verifier.Check(sample.Input)...)
	}

	out := command.OutOrStdout()
	for _, mismatch := range mismatches {
		fmt.Fprintln(out, mismatch.String())
	}

	logger.WithFields(logrus.Fields{
		"seed":       options.Seed,
		"samples":    len(samples),
		"strategies": len(scanner.Names()),
		"mismatches": len(mismatches),
	}).Info("Verification finished")

	if len(mismatches) > 0 {
		return errors.Errorf("verification failed: %d mismatches (seed %d)", len(mismatches), options.Seed)
	}

	fmt.Fprintf(out, "verified %d samples against %d strategies (seed %d): ok\n", len(samples), len(scanner.Names()), options.Seed)

	return nil
}
