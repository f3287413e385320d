package cmd

import (
	"VCS_Status_Microservice/internal/status-service/model"
	"VCS_Status_Microservice/internal/upordown/style"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type outputOptions struct {
	verbose bool
	pretty  bool
}

func NewRootCmd() *cobra.Command {
	opts := &outputOptions{}
	rootCmd := &cobra.Command{
		Use:   "upordown",
		Short: "Classify monitoring data points as UP or DOWN",
		Long: `upordown reads a batch of [status, timestamp] data points and prints UP when at
least 70% of them have status 0, DOWN otherwise. An empty batch is DOWN.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print up count, total and ratio after the verdict")
	rootCmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "Colour the verdict")
	rootCmd.AddCommand(newClassifyCmd(opts), newTargetCmd(opts))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func printEvaluation(w io.Writer, opts *outputOptions, evaluation model.Evaluation) {
	verdict := evaluation.Status.String()
	if opts.pretty {
		verdict = style.Verdict(evaluation.Status)
	}
	fmt.Fprintln(w, verdict)
	if opts.verbose {
		details := fmt.Sprintf("up=%d total=%d ratio=%.4f", evaluation.UpCount, evaluation.TotalCount, evaluation.UpRatio)
		if opts.pretty {
			details = style.DimText.Render(details)
		}
		fmt.Fprintln(w, details)
	}
}
