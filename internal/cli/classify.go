package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-task-tracker/internal/priority"
	priorityHTTP "smart-task-tracker/internal/priority/delivery/http"
	priorityPredictor "smart-task-tracker/internal/priority/predictor"
	priorityUsecase "smart-task-tracker/internal/priority/usecase"
	"smart-task-tracker/pkg/log"
	pkgPredictor "smart-task-tracker/pkg/predictor"
)

type classifyOptions struct {
	keywords     string
	effort       string
	urgent       bool
	predictorURL string
	timeout      time.Duration
}

func newClassifyCmd(newLogger func() log.Logger) *cobra.Command {
	var opts classifyOptions

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Print the priority of a task as JSON",
		Long: `Classify a task description and print the result as JSON.

Multiple arguments are joined with spaces. Effort that is not a
non-negative number falls back to 1 hour with a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger()

			raw := priority.RawInput{
				Text:     strings.Join(args, " "),
				Keywords: opts.keywords,
				IsUrgent: opts.urgent,
			}
			if cmd.Flags().Changed("effort") {
				raw.EffortHours = opts.effort
			}

			uc, err := buildClassifier(l, opts)
			if err != nil {
				return err
			}

			result, err := uc.ClassifyRaw(cmd.Context(), raw)
			if err != nil {
				return fmt.Errorf("classifying: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(priorityHTTP.NewResultResp(result))
		},
	}

	cmd.Flags().StringVar(&opts.keywords, "keywords", "", "extra keywords, e.g. \"deadline client\"")
	cmd.Flags().StringVar(&opts.effort, "effort", "", "estimated effort in hours (default 1)")
	cmd.Flags().BoolVar(&opts.urgent, "urgent", false, "mark the task as urgent")
	cmd.Flags().StringVar(&opts.predictorURL, "predictor-url", "", "external predictor endpoint; local rules only when empty")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", pkgPredictor.DefaultTimeout, "predictor timeout")

	return cmd
}

func buildClassifier(l log.Logger, opts classifyOptions) (priority.UseCase, error) {
	var predictor priority.Predictor
	if opts.predictorURL != "" {
		client, err := pkgPredictor.New(opts.predictorURL, opts.timeout)
		if err != nil {
			return nil, fmt.Errorf("predictor client: %w", err)
		}
		predictor = priorityPredictor.New(client, l)
	}
	return priorityUsecase.New(l, nil, predictor, opts.timeout), nil
}
