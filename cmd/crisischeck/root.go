package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/solace-health/crisis-detector/config"
	"github.com/solace-health/crisis-detector/lexicon"
	"github.com/solace-health/crisis-detector/logger"
	"github.com/solace-health/crisis-detector/normalize"
	"github.com/solace-health/crisis-detector/response"
	"github.com/solace-health/crisis-detector/risk"
	"github.com/solace-health/crisis-detector/telemetry"
)

type rootOptions struct {
	configPath    string
	lexiconPath   string
	responsesPath string
	logLevel      string
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "crisischeck",
		Short: "Assess chat messages for crisis risk",
		Long: `crisischeck runs the crisis risk detector against messages from
the command line: keyword tiers, metaphor suppression, lemmatized
second pass and emotion fusion, plus the tier's response bundle.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (optional)")
	cmd.PersistentFlags().StringVar(&opts.lexiconPath, "lexicon", "", "lexicon file (default: embedded)")
	cmd.PersistentFlags().StringVar(&opts.responsesPath, "responses", "", "responses file (default: embedded)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(assessCmd(opts))
	cmd.AddCommand(evalCmd(opts))

	return cmd
}

// environment is the wired-up detector stack shared by the subcommands.
type environment struct {
	detector *risk.Detector
	resolver *response.Resolver
	log      logger.Logger
}

// buildEnvironment loads configuration, merges flag overrides and
// constructs the detector and response resolver.
func (o *rootOptions) buildEnvironment() (*environment, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, err
	}

	// Flags win over file and environment.
	if o.lexiconPath != "" {
		cfg.Lexicon.Path = o.lexiconPath
	}
	if o.responsesPath != "" {
		cfg.Responses.Path = o.responsesPath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, err := loadLexicon(cfg.Lexicon.Path)
	if err != nil {
		return nil, err
	}

	resolver, err := loadResponses(cfg.Responses.Path)
	if err != nil {
		return nil, err
	}

	detectorCfg := risk.Config{
		Version:   cfg.Detection.Version,
		Telemetry: telemetry.NewProvider(prometheus.NewRegistry()),
	}
	if !cfg.Detection.DisableNormalizer {
		norm, err := normalize.New()
		if err != nil {
			log.Warn("lemmatizer unavailable, raw-text pass only", logger.Error(err))
		} else {
			detectorCfg.Normalizer = norm
		}
	}

	return &environment{
		detector: risk.NewDetector(store, log, detectorCfg),
		resolver: resolver,
		log:      log,
	}, nil
}

func loadLexicon(path string) (*lexicon.Store, error) {
	if path == "" {
		return lexicon.LoadDefault()
	}
	return lexicon.Load(path)
}

func loadResponses(path string) (*response.Resolver, error) {
	if path == "" {
		return response.LoadDefault()
	}
	return response.Load(path)
}
