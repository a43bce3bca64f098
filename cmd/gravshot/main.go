package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/width"

	"github.com/gravshot/gravshot/internal/config"
	"github.com/gravshot/gravshot/internal/data"
	"github.com/gravshot/gravshot/internal/game"
	"github.com/gravshot/gravshot/internal/input"
	"github.com/gravshot/gravshot/internal/scripting"
	"github.com/gravshot/gravshot/internal/vmath"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              gravshot  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        headless simulation host           \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

// displayWidth counts terminal columns; wide and fullwidth runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func printSection(title string) {
	lineLen := max(46-displayWidth(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value any) {
	s := fmt.Sprint(value)
	dotsLen := max(42-displayWidth(label)-len(s), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), s)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Host ───────────────────────────────────────────────────────────

const reportEvery = 60 // ticks between status lines

func run() error {
	// 1. Load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	// 3. Load content
	printSection("content")
	levels, err := data.LoadLevelTable(cfg.Content.Levels)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	printStat("levels", levels.Count())

	engine, err := scripting.NewEngine(cfg.Content.Scripts, log)
	if err != nil {
		return fmt.Errorf("init lua: %w", err)
	}
	defer engine.Close()
	printStat("lua tilt script", engine.HasTilt())

	src, err := newInput(cfg.Input, engine)
	if err != nil {
		return err
	}
	printStat("input", cfg.Input.Source)

	// 4. Build the level shell
	app := game.NewApp(game.AppOptions{
		Levels: levels,
		Hooks:  engine,
		Tuning: &cfg.Tuning,
		Input:  src,
		Seed:   cfg.Simulation.Seed,
		Step:   cfg.Simulation.TickRate,
		Log:    log,
	})
	app.Start(cfg.Simulation.StartLevel)
	if app.Done() {
		return fmt.Errorf("start level %d: only %d levels", cfg.Simulation.StartLevel, levels.Count())
	}

	// 5. Run
	printSection("running")
	printReady(fmt.Sprintf("simulation loop (tick: %s)", cfg.Simulation.TickRate))
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := make(chan status, 1)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(stats)
		return loop(ctx, app, cfg.Simulation, stats)
	})
	g.Go(func() error {
		report(stats, log)
		return nil
	})

	err = g.Wait()
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("shutdown signal received", zap.Int("ticks", app.Ticks()))
		return nil
	case err != nil:
		return err
	}
	log.Info("host stopped", zap.Int("ticks", app.Ticks()), zap.Int("level", app.Level()), zap.Bool("complete", app.Done()))
	return nil
}

type status struct {
	level int
	stats game.Stats
}

// loop drives the App at the configured rate until every level is won, the
// frame budget runs out, or ctx is cancelled.
func loop(ctx context.Context, app *game.App, cfg config.SimulationConfig, out chan<- status) error {
	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !app.Tick() {
				return nil
			}
			if cfg.MaxFrames > 0 && app.Ticks() >= cfg.MaxFrames {
				return nil
			}
			if app.Ticks()%reportEvery == 0 {
				select {
				case out <- status{level: app.Level(), stats: app.Simulation().Stats()}:
				default: // reporter is behind; drop
				}
			}
		}
	}
}

func report(in <-chan status, log *zap.Logger) {
	for s := range in {
		log.Debug("status",
			zap.Int("level", s.level),
			zap.Int("frame", s.stats.Frame),
			zap.Int("objects", s.stats.Objects),
			zap.Int("players", s.stats.Players),
			zap.Int("projectiles", s.stats.Projectiles),
			zap.Int("adversaries", s.stats.Adversaries),
		)
	}
}

func newInput(cfg config.InputConfig, engine *scripting.Engine) (input.Source, error) {
	base := vmath.V(cfg.X, cfg.Y)
	switch cfg.Source {
	case "sway":
		return input.NewSway(base, cfg.Amplitude, cfg.Period), nil
	case "script":
		if !engine.HasTilt() {
			return nil, errors.New("input source \"script\" needs a tilt(frame) function in scripts/input")
		}
		return input.NewScripted(engine, base), nil
	default:
		return input.NewFixed(cfg.X, cfg.Y), nil
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
