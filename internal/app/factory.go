// Package app wires the application dependencies together.
package app

import (
	"os"

	"github.com/relay-tools/slashcmd/internal/client"
	"github.com/relay-tools/slashcmd/internal/config"
	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/history"
	"github.com/relay-tools/slashcmd/internal/log"
	"github.com/relay-tools/slashcmd/internal/paths"
	"github.com/relay-tools/slashcmd/internal/ui"
	"github.com/relay-tools/slashcmd/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// SchemaPath points at a schema file on disk. Empty means the embedded
	// demo schema.
	SchemaPath string
}

// DefaultOptions returns the application options derived from config.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	schemaPath, _ := config.Get("schema_path")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     logLevel,
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		SchemaPath:   schemaPath,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger
	if opts.LogEnabled {
		l, err := log.New(paths.LogFilePath(), log.ParseLevel(opts.LogLevel))
		if err != nil {
			// Fall back to NopLogger on error
			logger = log.NopLogger{}
		} else {
			logger = l
		}
	} else {
		logger = log.NopLogger{}
	}

	fixture, err := loadFixture(opts.SchemaPath, logger)
	if err != nil {
		return nil, err
	}

	historyStore, err := history.New(history.DBPath())
	if err != nil {
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Schema:   fixture,
		Client:   fixture,
		Users:    fixture,
		Channels: fixture,
		History:  historyStore,
		Config:   config.NewProvider(),
		Logger:   logger,
		Output:   ui.NewWriter(writerOpts...),
		Styler:   style.NewStyler(),
	}, nil
}

// loadFixture loads the schema file when one is configured and present,
// otherwise the embedded demo schema.
func loadFixture(schemaPath string, logger domain.Logger) (*client.Fixture, error) {
	if schemaPath != "" {
		if _, err := os.Stat(schemaPath); err == nil {
			sf, err := client.LoadSchemaFile(schemaPath)
			if err != nil {
				return nil, err
			}
			logger.Info("app: loaded schema from %s", schemaPath)
			return client.NewFixture(sf), nil
		}
		logger.Warn("app: schema file %s not found, using embedded demo", schemaPath)
	}

	sf, err := client.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return client.NewFixture(sf), nil
}

// CallContext builds the execution context attached to composed calls from
// the configured team and channel.
func CallContext(cfg domain.ConfigProvider) domain.CallContext {
	teamID, _ := cfg.Get("team_id")
	channelID, _ := cfg.Get("channel_id")
	return domain.CallContext{
		TeamID:    teamID,
		ChannelID: channelID,
	}
}

// NewForTesting creates an Application suitable for testing.
// Uses the embedded schema, an unopened history store, NopLogger, and no
// styling.
func NewForTesting() *domain.Application {
	sf, err := client.LoadEmbedded()
	if err != nil {
		panic(err)
	}
	fixture := client.NewFixture(sf)

	return &domain.Application{
		Schema:   fixture,
		Client:   fixture,
		Users:    fixture,
		Channels: fixture,
		History:  history.NewWithDB(nil), // callers needing history should provide their own
		Config:   config.NewProvider(),
		Logger:   log.NopLogger{},
		Output:   ui.NewWriter(ui.WithPagerDisabled()),
		Styler:   style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
