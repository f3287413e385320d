package cmd

import (
	"VCS_Status_Microservice/internal/status-service/classifier"
	"VCS_Status_Microservice/internal/status-service/decoder"
	"VCS_Status_Microservice/internal/status-service/model"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newClassifyCmd(opts *outputOptions) *cobra.Command {
	var file string
	classifyCmd := &cobra.Command{
		Use:   "classify [JSON]",
		Short: "Classify a batch given as argument, fixture file or stdin",
		Example: `  upordown classify '[[0, 1234567890], [1, 1234567950]]'
  upordown classify --file testdata/mostly_up.json
  curl -s "$GRAPHITE/render/?target=host.ping&format=json" | upordown classify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readBatchInput(cmd, args, file)
			if err != nil {
				return err
			}
			batch, err := decoder.DecodeBatch(data)
			if err != nil {
				return fmt.Errorf("invalid data points: %w", err)
			}
			summary := classifier.Summarize(batch)
			printEvaluation(cmd.OutOrStdout(), opts, model.Evaluation{
				Status:     summary.Verdict,
				UpCount:    summary.Up,
				TotalCount: summary.Total,
				UpRatio:    summary.Ratio,
			})
			return nil
		},
	}
	classifyCmd.Flags().StringVarP(&file, "file", "f", "", "Read the batch from a JSON file ({\"datapoints\": [...]} or a plain array)")
	return classifyCmd
}

func readBatchInput(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	switch {
	case len(args) == 1 && file != "":
		return nil, fmt.Errorf("pass the batch either as argument or with --file, not both")
	case len(args) == 1:
		return []byte(args[0]), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
}
