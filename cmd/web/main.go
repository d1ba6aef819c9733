package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/myrjola/liftlog/internal/envstruct"
	"github.com/myrjola/liftlog/internal/errors"
	"github.com/myrjola/liftlog/internal/exerciseinfo"
	"github.com/myrjola/liftlog/internal/logging"
	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/sqlite"
)

type application struct {
	logger          *slog.Logger
	sessionManager  *scs.SessionManager
	templateFS      fs.FS
	trainingService *progression.Service
	progressionCfg  progression.Config
	infoGenerator   *exerciseinfo.Generator
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LIFTLOG_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTLOG_SQLITE_URL" envDefault:"./liftlog.sqlite3"`
	// BackupPath is where the plain-JSON training state backup is written.
	BackupPath string `env:"LIFTLOG_BACKUP_PATH" envDefault:"./liftlog-backup.json"`
	// ConfigPath optionally points to a JSON file overriding the built-in
	// exercise and volume-landmark tables.
	ConfigPath string `env:"LIFTLOG_CONFIG_PATH" envDefault:""`
	// OpenAIAPIKey enables generated exercise write-ups when set.
	OpenAIAPIKey string `env:"LIFTLOG_OPENAI_API_KEY" envDefault:""`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"LIFTLOG_TEMPLATE_PATH" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return errors.Wrap(err, "resolve template path")
	}

	progressionCfg := progression.DefaultConfig()
	if cfg.ConfigPath != "" {
		if progressionCfg, err = progression.LoadConfig(cfg.ConfigPath); err != nil {
			return errors.Wrap(err, "load progression config", slog.String("path", cfg.ConfigPath))
		}
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	trainingService, err := progression.NewService(ctx, db, cfg.BackupPath, progressionCfg, logger)
	if err != nil {
		return errors.Wrap(err, "initialize training service")
	}
	defer trainingService.Close()

	app := application{
		logger:          logger,
		sessionManager:  initializeSessionManager(db),
		templateFS:      os.DirFS(htmlTemplatePath),
		trainingService: trainingService,
		progressionCfg:  progressionCfg,
		infoGenerator:   exerciseinfo.NewGenerator(cfg.OpenAIAPIKey, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	// The app runs on localhost over plain HTTP, so the cookie cannot be
	// marked Secure.
	sessionManager.Cookie.Secure = false
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
