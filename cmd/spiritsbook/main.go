package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/config"
	"github.com/aliskhannn/spirits-book-bot/internal/delivery/tui"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/infra/sqlite"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
	"github.com/aliskhannn/spirits-book-bot/internal/logger"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
	"github.com/aliskhannn/spirits-book-bot/internal/service"
	"github.com/aliskhannn/spirits-book-bot/internal/storage"
	"github.com/aliskhannn/spirits-book-bot/internal/watcher"
)

var errCheckFailed = errors.New("some books failed to load")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "spiritsbook",
		Short:         "Read The Spirits' Book in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")

	root.AddCommand(newReadCmd(&configDir))
	root.AddCommand(newCheckCmd(&configDir))
	root.AddCommand(newShowCmd(&configDir))
	return root
}

func loadConfig(configDir string) (*config.Config, error) {
	if configDir == "" {
		return config.Load()
	}
	return config.Load(configDir)
}

func newQuestionRepository(cfg *config.Config) *repository.QuestionRepository {
	return repository.NewQuestionRepository(cfg.BaseDir, cfg.PluginDir, cfg.DataDir)
}

func newReadCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Open the interactive reader",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			return runReader(cmd.Context(), cfg)
		},
	}
}

func runReader(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg, err := logger.NewFile(cfg, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	settingsRepo, err := sqlite.NewSettingsRepository(ctx, cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer func() { _ = settingsRepo.Close() }()

	questionRepo := newQuestionRepository(cfg)
	bookService := service.NewBookService(
		questionRepo,
		storage.NewSessionStorage(),
		service.NewSettingsService(settingsRepo),
		lg,
	)
	if lang, err := entities.ParseLanguage(cfg.DefaultLanguage); err == nil {
		bookService.SetDefaultLanguage(lang)
	}

	program := tea.NewProgram(tui.New(ctx, bookService, osLocale()), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.WatchData {
		w, err := watcher.New(&notifyingReloader{books: bookService, program: program}, questionRepo, watcher.DefaultDebounce, lg)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	lg.Info("reader started", zap.String("data_dir", questionRepo.DataDir()))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// notifyingReloader reloads a book and tells the reader to pick it up.
type notifyingReloader struct {
	books   *service.BookService
	program *tea.Program
}

func (r *notifyingReloader) Reload(ctx context.Context, lang entities.Language) error {
	if err := r.books.Reload(ctx, lang); err != nil {
		return err
	}
	r.program.Send(tui.ReloadedMsg{})
	return nil
}

func (r *notifyingReloader) ReloadAll(ctx context.Context) error {
	err := r.books.ReloadAll(ctx)
	r.program.Send(tui.ReloadedMsg{})
	return err
}

// osLocale reads the POSIX locale, e.g. "pt_BR.UTF-8" -> "pt_BR".
func osLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

func newCheckCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every book and report problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), newQuestionRepository(cfg))
		},
	}
}

func runCheck(ctx context.Context, out io.Writer, repo *repository.QuestionRepository) error {
	failed := false
	for _, lang := range entities.Languages {
		store, err := repo.Load(ctx, lang)
		if err != nil {
			failed = true
			_, _ = fmt.Fprintf(out, "%-6s FAIL  %v\n", lang, err)
			continue
		}
		_, _ = fmt.Fprintf(out, "%-6s ok    %d questions  %s\n", lang, store.Len(), repo.Path(lang))
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func newShowCmd(configDir *string) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Print one question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = string(locale.Match(osLocale()))
			}
			return runShow(cmd.Context(), cmd.OutOrStdout(), newQuestionRepository(cfg), lang, args[0])
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "book language: pt-BR|en|es|fr (default: system locale)")

	return cmd
}

func runShow(ctx context.Context, out io.Writer, repo *repository.QuestionRepository, code, arg string) error {
	lang, err := entities.ParseLanguage(code)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid question number %q", arg)
	}

	store, err := repo.Load(ctx, lang)
	if err != nil {
		return err
	}

	idx, ok := store.IndexOf(number)
	if !ok {
		return fmt.Errorf("%s: #%d", locale.T(lang).NotFound, number)
	}
	q, _ := store.At(idx)

	_, err = fmt.Fprint(out, tui.RenderQuestion(q, lang, 80))
	return err
}
