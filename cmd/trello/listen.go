package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-trello/trello"
	"github.com/go-trello/trello/internal/hookserver"
	"github.com/go-trello/trello/internal/hookstore"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Run a webhook callback server and journal deliveries",
	Long: `Starts an HTTP server on server.port, registers a webhook for each
board in trello.board_ids pointing at trello.callback_url, and journals
every delivery into the sqlite database at database.path. Webhooks are
deleted again on shutdown.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "deliveries.db"
	}
	store, err := hookstore.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open delivery journal: %w", err)
	}

	port := viper.GetString("server.port")
	if port == "" {
		port = "8080"
	}

	callbackURL := viper.GetString("trello.callback_url")
	if callbackURL == "" {
		return errors.New("trello.callback_url is not configured")
	}

	var boardIDs []string
	if err := viper.UnmarshalKey("trello.board_ids", &boardIDs); err != nil || len(boardIDs) == 0 {
		return errors.New("trello.board_ids is not configured properly")
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: hookserver.New(store, zap.L()).Handler(),
	}

	zap.L().Info("Starting webhook server", zap.String("port", port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server error", zap.Error(err))
		}
	}()

	client := newClient()

	// Trello verifies the callback URL before accepting a registration, so
	// retry until the server is reachable from outside.
	hooks := make(map[string]*trello.WebHook)
	for _, boardID := range boardIDs {
		var hook *trello.WebHook
		err := retry.Do(
			func() error {
				var err error
				hook, err = client.CreateHook(cmd.Context(), callbackURL, boardID, "delivery journal", "")
				return err
			},
			retry.Attempts(5),
			retry.Delay(500*time.Millisecond),
		)
		if err != nil {
			zap.L().Error("Failed to register webhook for board", zap.String("boardID", boardID), zap.Error(err))
			continue
		}
		zap.L().Info("Registered webhook", zap.String("boardID", boardID), zap.String("webhookID", hook.ID))
		hooks[boardID] = hook
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	zap.L().Info("Shutdown initiated", zap.String("reason", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Error shutting down server", zap.Error(err))
	}

	for boardID, hook := range hooks {
		if err := hook.Delete(ctx); err != nil {
			zap.L().Error("Error deleting webhook", zap.String("boardID", boardID), zap.Error(err))
		} else {
			zap.L().Info("Deleted webhook", zap.String("boardID", boardID))
		}
	}

	if err := store.Close(); err != nil {
		zap.L().Error("Error closing delivery journal", zap.Error(err))
	}
	return nil
}
