package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/adapters/horoscope/apininjas"
	httpadapter "github.com/itsaddyon/The-Zodiac-Chat/internal/adapters/http"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/adapters/lexicon"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/app"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/config"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

// stdRNG delegates to math/rand/v2 (auto-seeded, safe for concurrent use).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

var rootCmd = &cobra.Command{
	Use:           "oracled",
	Short:         "The Cosmic Oracle horoscope service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var (
	askFlags app.ConsultRequest
	askRaw   bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Consult the oracle once and print the reading",
	Long: `Fetch a horoscope and print the decorated reading to stdout.

Exits with status 1 when the horoscope could not be retrieved.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askFlags.Sign, "sign", "aries", "zodiac sign")
	askCmd.Flags().StringVar(&askFlags.Day, "day", "today", "day selector (today, tomorrow, ...)")
	askCmd.Flags().StringVar(&askFlags.Name, "name", "", "your name")
	askCmd.Flags().StringVar(&askFlags.DOB, "dob", "", "date of birth, YYYY-MM-DD")
	askCmd.Flags().StringVar(&askFlags.Crush, "crush", "", "crush's name")
	askCmd.Flags().StringVar(&askFlags.Ex, "ex", "", "comma-separated ex names")
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "print the markdown text without terminal styling")

	rootCmd.AddCommand(serveCmd, askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func setup(logOut io.Writer) (config.Config, *slog.Logger, *app.OracleService, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	lexStore := lexicon.NewEmbeddedStore()
	if _, err := lexStore.GetLexicon(context.Background()); err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load lexicon: %w", err)
	}

	fetcher := apininjas.NewClient(
		&http.Client{Timeout: cfg.HoroscopeTimeout},
		cfg.HoroscopeAPIKey,
		cfg.HoroscopeBaseURL,
		logger,
	)

	svc := app.NewOracleService(fetcher, lexStore, stdRNG{}, nil, logger)
	return cfg, logger, svc, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, svc, err := setup(os.Stdout)
	if err != nil {
		return err
	}

	e := httpadapter.NewServer(svc, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runAsk(cmd *cobra.Command, _ []string) error {
	_, _, svc, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	resp := svc.Consult(cmd.Context(), askFlags)

	out := resp.Text
	if !askRaw {
		if out, err = renderTerminal(resp.Text); err != nil {
			return fmt.Errorf("render reading: %w", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	if resp.Style != domain.StyleSuccess {
		return errors.New("no horoscope available")
	}
	return nil
}
