package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solace-health/crisis-detector/domain"
)

// assessOutput is the JSON document printed for one message.
type assessOutput struct {
	Assessment *domain.CrisisAssessment `json:"assessment"`
	Response   *domain.ResponseBundle   `json:"response,omitempty"`
}

func assessCmd(opts *rootOptions) *cobra.Command {
	var (
		emotion           string
		emotionConfidence float64
		urgency           string
	)

	cmd := &cobra.Command{
		Use:   "assess <message>",
		Short: "Assess a single message and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.buildEnvironment()
			if err != nil {
				return err
			}
			defer func() { _ = env.log.Sync() }()

			signal := domain.EmotionSignal{
				PrimaryEmotion: emotion,
				Confidence:     emotionConfidence,
				Urgency:        urgency,
			}

			assessment := env.detector.Assess(cmd.Context(), args[0], signal)
			out := assessOutput{
				Assessment: assessment,
				Response:   env.resolver.Resolve(assessment.RiskLevel),
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encode assessment: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&emotion, "emotion", "", "primary emotion label (e.g. sadness, fear, anger)")
	cmd.Flags().Float64Var(&emotionConfidence, "emotion-confidence", 0, "emotion classifier confidence (0..1)")
	cmd.Flags().StringVar(&urgency, "urgency", "", "emotion urgency (low, medium, high)")

	return cmd
}
