package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"chat-core/infrastructure/http"
	"chat-core/internal"
	"chat-core/moderation"
	"chat-core/notify"
	"chat-core/search"
	"chat-core/services"
	"chat-core/session"
	"chat-core/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	recordStore := store.NewBadgerStore(db, log)

	// 3. Full-text index (Bluge)
	index, err := search.OpenMessageIndex(config.BlugeFilepath, log)
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	// 4. Notification transport
	var notifier notify.INotifier = notify.NoopNotifier{Log: log}
	if config.RedisAddr != "" {
		redisNotifier := notify.NewRedisNotifier(config.RedisAddr, config.RedisPassword, "", config.NotifyInboxCap)
		defer redisNotifier.Close()
		notifier = redisNotifier
		log.Info("Using Redis notification transport", "address", config.RedisAddr)
	}

	// 5. Sessions: Redis-backed when available, stateless JWT otherwise
	var sessions session.IStore
	if config.RedisAddr != "" {
		redisSessions := session.NewRedisStore(config.RedisAddr, config.RedisPassword, "", config.SessionTTL)
		defer redisSessions.Close()
		sessions = redisSessions
	} else {
		if config.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET is required when REDIS_ADDR is unset")
		}
		sessions = session.NewJWTStore(config.SessionSecret, config.SessionTTL)
	}

	// 6. Services
	rooms := services.NewRoomRegistry(recordStore, log)
	messages := services.NewMessageStore(recordStore, log).WithIndex(index)

	if config.CensoredFilepath != "" {
		words, err := loadCensoredWords(config.CensoredFilepath)
		if err != nil {
			return fmt.Errorf("censored word list: %w", err)
		}
		replacement, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		moderator, err := moderation.NewModerator(words, replacement)
		if err != nil {
			return fmt.Errorf("moderator build failed: %w", err)
		}
		messages.WithModerator(&moderator)
		log.Info("Moderation enabled", "words", len(words))
	}

	fanout := services.NewNotificationFanout(notifier, log)
	if config.PreviewLength > 0 {
		fanout.WithPreviewLength(config.PreviewLength)
	}
	chat := services.NewChatService(rooms, messages, fanout, log)

	// 7. Local store inspector
	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, nil, nil)
		log.Info("Store inspector enabled", "port", config.DebugPort)
	}

	// 8. HTTP server & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := http.NewServer(chat, sessions, log)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	errChan := make(chan error, 1)
	go func() {
		if err := server.Listen(address); err != nil {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown did not complete cleanly", "error", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}

// loadCensoredWords reads one word per line, ignoring blanks and comments.
func loadCensoredWords(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}
