package main

import (
	"github.com/iwvelando/interest-calculator/internal/config"
	"github.com/iwvelando/interest-calculator/internal/report"
	"github.com/iwvelando/interest-calculator/internal/session"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application carries the state shared by every subcommand once the root
// command has loaded configuration.
type application struct {
	configLocation   string
	logLevel         string
	outputFormatFlag string
	conf             *config.Configuration
	logger           *zap.Logger
	outputFormat     string
}

func newRootCmd(app *application) *cobra.Command {
	root := &cobra.Command{
		Use:           "interest-calculator",
		Short:         "Simple, compound and EMI interest calculator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load()
		},
	}

	root.PersistentFlags().StringVar(&app.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&app.outputFormatFlag, "output-format", "", "type of output override: pretty, json, csv")

	root.AddCommand(calculateCmd(app), notesCmd(), shellCmd(app), serveCmd(app))
	return root
}

func (a *application) load() error {
	conf, err := config.LoadConfiguration(a.configLocation)
	if err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return err
	}

	outputFormat := conf.Output.Format
	if a.outputFormatFlag != "" {
		outputFormat = a.outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		_ = logger.Sync()
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	a.conf = conf
	a.logger = logger
	a.outputFormat = outputFormat
	return nil
}

func (a *application) newSession() *session.Session {
	return session.New(a.logger,
		session.WithDefaultCurrency(a.conf.Defaults.Currency),
		session.WithExporter(report.NewWriter(a.logger, a.conf.Export.ReportOptions())),
	)
}
