// Package root contains the root command for the application
package root

import (
	"context"

	"dguaman/sri-facturas/internal/classifier"
	"dguaman/sri-facturas/internal/config"
	"dguaman/sri-facturas/internal/export"
	"dguaman/sri-facturas/internal/gmailsource"
	"dguaman/sri-facturas/internal/importer"
	"dguaman/sri-facturas/internal/srixml"
	"dguaman/sri-facturas/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sri-facturas",
		Short: "Importa facturas electrónicas del SRI y calcula intereses y multas por mora.",
		Long: `sri-facturas extrae facturas electrónicas de los correos del SRI,
las clasifica por categoría de gasto y calcula las multas e intereses
de obligaciones tributarias vencidas.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}

			// Push the configured logger into every package
			srixml.SetLogger(Log)
			classifier.SetLogger(Log)
			importer.SetLogger(Log)
			gmailsource.SetLogger(Log)
			export.SetLogger(Log)
			store.SetLogger(Log)

			configureClassifier()
		},
	}

	// Output is the shared output file flag
	Output string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&Output, "output", "o", "", "Output file")
}

// configureClassifier builds the package-level classifier from the rule
// file override (when present) and the optional AI fallback.
func configureClassifier() {
	rules := classifier.DefaultRules()

	loaded, err := store.NewRuleStore(Cfg.Classifier.RulesFile).LoadRules()
	if err != nil {
		Log.WithError(err).Warn("Failed to load classifier rule file, using built-in rules")
	} else if len(loaded) > 0 {
		rules = loaded
	}

	c := classifier.New(rules)

	if Cfg.Classifier.AI.Enabled {
		fallback, err := classifier.NewGeminiFallback(context.Background(), Cfg.Classifier.AI.APIKey, Cfg.Classifier.AI.Model)
		if err != nil {
			Log.WithError(err).Warn("AI fallback unavailable, classifying with keyword rules only")
		} else {
			c.SetFallback(fallback)
		}
	}

	classifier.Configure(c)
}
