package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/solace-health/crisis-detector/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// evalCase is one fixture: a message, an optional emotion signal and the
// risk level the detector is expected to report.
type evalCase struct {
	Message  string               `yaml:"message"`
	Emotion  domain.EmotionSignal `yaml:"emotion"`
	Expected string               `yaml:"expected"`
}

type evalDocument struct {
	Cases []evalCase `yaml:"cases"`
}

func evalCmd(opts *rootOptions) *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run the detector against a fixture set and report accuracy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.buildEnvironment()
			if err != nil {
				return err
			}
			defer func() { _ = env.log.Sync() }()

			cases, err := loadFixtures(fixturesPath)
			if err != nil {
				return err
			}
			if len(cases) == 0 {
				return fmt.Errorf("fixture set is empty")
			}

			out := cmd.OutOrStdout()
			passed := 0
			for _, c := range cases {
				expected, err := domain.ParseTier(c.Expected)
				if err != nil {
					return fmt.Errorf("fixture %q: %w", c.Message, err)
				}

				a := env.detector.Assess(cmd.Context(), c.Message, c.Emotion)

				mark := "FAIL"
				if a.RiskLevel == expected {
					mark = "ok"
					passed++
				}
				fmt.Fprintf(out, "%-4s  expected=%-8s detected=%-8s conf=%.2f  %q\n",
					mark, expected, a.RiskLevel, a.Confidence, c.Message)
			}

			fmt.Fprintf(out, "\n%d/%d correct (%.1f%%)\n",
				passed, len(cases), 100*float64(passed)/float64(len(cases)))

			if passed != len(cases) {
				return fmt.Errorf("%d fixture(s) failed", len(cases)-passed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "fixtures file (default: embedded set)")

	return cmd
}

func loadFixtures(path string) ([]evalCase, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures %s: %w", path, err)
		}
	}

	var doc evalDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return doc.Cases, nil
}
