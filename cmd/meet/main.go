package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"

	"roundtable/domain"
	"roundtable/infrastructure/backendapi"
	"roundtable/infrastructure/search"
	"roundtable/infrastructure/storage"
	"roundtable/internal"
	"roundtable/moderation"
	"roundtable/observability"
	"roundtable/projection"
	"roundtable/provider"
	"roundtable/runtime"
	"roundtable/services"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper. Its only responsibility is
	// to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Meet terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, drives the interactive loop, and
// centralizes error reporting so every defer executes before exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	participants, err := internal.ParseParticipants(config.Participants)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB) & search index (Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation
	wordlists, err := moderation.LoadEmbedded()
	if err != nil {
		return exitRuntime, err
	}
	logger.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(wordlists.Words), strings.Join(wordlists.Languages, ",")))

	moderator, err := moderation.NewModerator(wordlists.Words, charReplacement)
	if err != nil {
		return exitRuntime, err
	}

	// 4. Backend, resolver and session wiring
	deskRepository := storage.NewDeskRepository(db, logger)
	meetingRepository := storage.NewMeetingRepository(db, logger)
	messageRepository := storage.NewMessageRepository(db, logger, config.LimitMessages)
	transcriptIndex := search.NewTranscriptIndex(blugeWriter, logger)

	backend := backendapi.NewLocalBackend(
		logger,
		deskRepository,
		meetingRepository,
		messageRepository,
		transcriptIndex,
		provider.NewScripted(config.ProviderDelay),
	)

	resolver := runtime.NewDeskResolver(backend, logger)
	ledger := observability.NewCostLedger()

	session := runtime.NewSession(
		logger, backend, resolver, ledger, &moderator,
		config.RoundPacing, config.AskTimeout, config.SinkTimeout,
	)

	console := newConsoleSink(participants)
	session.AddSinks(projection.NewTimeline(), console)

	service := services.NewMeetingService(session)

	// 5. Optional badger inspector
	if config.DebugPort > 0 {
		url := fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, "/inspect", MessageMapper)
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Interactive loop
	if err := interact(ctx, logger, service, ledger, participants, console); err != nil {
		return exitRuntime, err
	}

	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

// interact drives the blocking read-eval loop on stdin until the operator
// ends the meeting or the context is cancelled by a signal.
func interact(
	ctx context.Context,
	logger *slog.Logger,
	service services.IMeetingService,
	ledger *observability.CostLedger,
	participants []domain.Participant,
	console *consoleSink,
) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	console.Banner()

	fmt.Print("Topic (or /resume <id>): ")
	if !scanner.Scan() {
		return scanner.Err()
	}
	first := strings.TrimSpace(scanner.Text())
	if id, ok := strings.CutPrefix(first, "/resume "); ok {
		if err := service.ResumeSession(ctx, strings.TrimSpace(id)); err != nil {
			return err
		}
		console.Replay(service.Transcript())
	} else {
		if err := service.StartSession(ctx, first, participants); err != nil {
			return err
		}
	}

	console.Prompt(service.Phase())
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		var err error
		switch {
		case line == "":
		case line == "/end" || line == "/quit":
			if err := service.EndSession(ctx); err != nil {
				logger.Warn("End session failed", "error", err)
			}
			return nil
		case line == "/yes":
			err = service.ConfirmRound2(ctx)
		case line == "/no":
			err = service.DeclineRound2(ctx)
		case line == "/stats":
			printStats(ledger)
		case strings.HasPrefix(line, "/resume "):
			if err = service.ResumeSession(ctx, strings.TrimSpace(strings.TrimPrefix(line, "/resume "))); err == nil {
				console.Replay(service.Transcript())
			}
		default:
			err = service.SubmitUtterance(ctx, line)
		}
		if err != nil {
			logger.Warn("Command rejected", "input", line, "error", err)
		}
		console.Prompt(service.Phase())
	}

	// EOF or signal: close the meeting durably before the defers run.
	if err := service.EndSession(context.WithoutCancel(ctx)); err != nil {
		logger.Warn("End session failed", "error", err)
	}
	return scanner.Err()
}

func printStats(ledger *observability.CostLedger) {
	snap := ledger.Snapshot()
	fmt.Printf("session cost: %.6f (%d calls, %s) | total cost: %.6f (%d calls, %s)\n",
		snap.SessionTotal, snap.SessionCalls, snap.SessionLatency,
		snap.GlobalTotal, snap.GlobalCalls, snap.GlobalLatency)

	if stats, err := observability.CollectSelf(); err == nil {
		fmt.Printf("pid: %d | rss: %.1f MiB | cpu: %.1f%% | status: %s\n",
			stats.PID, float64(stats.RSSBytes)/(1<<20), stats.CPUPercent, stats.Status)
	}
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// MessageMapper renders persisted rows in the inspector. Messages carry the
// text in Detail; other kinds fall back to the default rendering.
func MessageMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "msg:"):
		var m struct {
			Kind    string   `json:"kind"`
			Content string   `json:"content"`
			Round   int      `json:"round"`
			Cost    *float64 `json:"cost"`
			At      int64    `json:"at"`
		}
		if err := json.Unmarshal(val, &m); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = strings.ToUpper(m.Kind)
		row.Detail = m.Content
		row.Timestamp = time.Unix(0, m.At).UTC().Format("15:04:05")
		if m.Cost != nil {
			row.Scores = fmt.Sprintf("cost:%.6f round:%d", *m.Cost, m.Round)
		}
	case strings.HasPrefix(key, "meeting:"):
		row.Type = "MEETING"
	case strings.HasPrefix(key, "desk:"):
		row.Type = "DESK"
	}

	return row
}
