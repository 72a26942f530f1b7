package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/spirits-book-bot/internal/config"
	"github.com/aliskhannn/spirits-book-bot/internal/delivery/telegram"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/spirits-book-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/spirits-book-bot/internal/logger"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
	"github.com/aliskhannn/spirits-book-bot/internal/service"
	"github.com/aliskhannn/spirits-book-bot/internal/storage"
	"github.com/aliskhannn/spirits-book-bot/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireBot(); err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "book",
			Description: "Show the current question",
		},
		{
			Command:     "random",
			Description: "Show a random question",
		},
		{
			Command:     "favorites",
			Description: "List favorite questions",
		},
		{
			Command:     "language",
			Description: "Change the language",
		},
		{
			Command:     "reload",
			Description: "Reload the book",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	dsn, _ := cfg.DB.DSN()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	defaultLang, err := entities.ParseLanguage(cfg.DefaultLanguage)
	if err != nil {
		lg.Warn("unsupported default language, using fallback",
			zap.String("lang", cfg.DefaultLanguage),
			zap.String("fallback", string(entities.DefaultLanguage)),
		)
		defaultLang = entities.DefaultLanguage
	}

	// Initialize repositories and services.
	questionRepo := repository.NewQuestionRepository(cfg.BaseDir, cfg.PluginDir, cfg.DataDir)
	settingsRepo := pgrepo.NewSettingsRepository(pool)
	sessions := storage.NewSessionStorage()

	settingsService := service.NewSettingsService(settingsRepo)
	bookService := service.NewBookService(questionRepo, sessions, settingsService, lg)
	bookService.SetDefaultLanguage(defaultLang)

	if err := bookService.ReloadAll(ctx); err != nil {
		lg.Warn("some books could not be loaded", zap.Error(err))
	}
	lg.Info("books loaded",
		zap.String("data_dir", questionRepo.DataDir()),
		zap.Int("languages", len(questionRepo.Cached())),
	)

	janitor := service.NewSessionJanitor(sessions, cfg.SessionTTL, cfg.JanitorInterval, lg)
	handler := telegram.NewHandler(bot, lg, bookService, cfg.ListPageSize)

	workers := []worker{handler.Run, janitor.Start}

	// Build everything that can fail before the first worker starts.
	if cfg.WatchData {
		w, err := watcher.New(bookService, questionRepo, watcher.DefaultDebounce, lg)
		if err != nil {
			return err
		}
		workers = append(workers, w.Run)
	}

	err = serve(ctx, workers...)
	lg.Info("shutdown signal received")
	return err
}

// worker is a long-running part of the bot that stops when ctx is done.
type worker func(ctx context.Context) error

// serve runs workers until one fails or ctx is done, and returns only
// after all of them have stopped.
func serve(ctx context.Context, workers ...worker) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, run := range workers {
		g.Go(func() error { return run(ctx) })
	}
	return g.Wait()
}
