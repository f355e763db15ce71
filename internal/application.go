package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/service"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/internal/view"
)

// RunApp - plays one game on stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	summary, err := Play(ctx, logger, conf, os.Stdout)
	if err != nil {
		if errors.Is(err, context.Canceled) && summary != nil {
			log.Info("Game interrupted", "moves", summary.Moves)
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game over",
		"result", summary.Result.String(),
		"moves", summary.Moves,
		"rejected", summary.Rejected,
	)

	return nil
}

// Play builds the picker and renderer described by conf and plays one game, writing boards to out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) (*usecase.Summary, error) {
	log := logger.With("component", "app")

	var picker service.ColumnPicker
	if conf.HasScript() {
		log.Info("Replaying scripted moves", "moves", len(conf.Moves))
		picker = service.NewSequencePicker(conf.Moves)
	} else {
		seed := conf.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Info("Playing random moves", "seed", seed)
		picker = service.NewRandomPicker(seed)
	}

	opts := usecase.Options{
		MaxMoves:   conf.MaxMoves,
		PrintBoard: !conf.Quiet,
	}
	if conf.Color {
		opts.Render = view.NewRenderer(out).Render
	}

	manager := usecase.NewGameManager(logger, picker, out, opts)

	summary, err := manager.Play(ctx, entity.NewBoard())
	if err != nil {
		return summary, fmt.Errorf("failed to play game: %w", err)
	}

	return summary, nil
}
