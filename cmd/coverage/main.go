// Command coverage runs the intervening-if template cascade over a clause
// corpus and reports how much of it the cascade recognizes and resolves.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/magefree/mage-conditions-go/game/condition"
	"github.com/magefree/mage-conditions-go/game/state"
	"github.com/magefree/mage-conditions-go/internal/config"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	corpusPath = flag.String("corpus", "", "clause corpus path (overrides config)")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path := cfg.Corpus.Path
	if *corpusPath != "" {
		path = *corpusPath
	}

	logger.Info("starting coverage run",
		zap.String("version", version),
		zap.String("corpus", path),
	)

	file, err := os.Open(path)
	if err != nil {
		logger.Fatal("failed to open corpus", zap.Error(err))
	}
	defer file.Close()

	eval := condition.NewEvaluator(logger)
	snap := &state.Snapshot{}

	var total, extracted, resolved, fallback, unmatched int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++

		clause, ok := condition.ExtractInterveningIfClause(line)
		if !ok {
			continue
		}
		extracted++

		res := eval.EvaluateDetailed(snap, "", clause, nil, nil)
		switch {
		case res.Matched && res.Fallback:
			fallback++
		case res.Matched:
			resolved++
		default:
			unmatched++
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("failed to read corpus", zap.Error(err))
	}

	logger.Info("coverage run complete",
		zap.Int("lines", total),
		zap.Int("intervening_if_clauses", extracted),
		zap.Int("resolved", resolved),
		zap.Int("fallback", fallback),
		zap.Int("unmatched", unmatched),
	)

	fmt.Printf("lines:      %d\n", total)
	fmt.Printf("clauses:    %d\n", extracted)
	fmt.Printf("resolved:   %d\n", resolved)
	fmt.Printf("fallback:   %d\n", fallback)
	fmt.Printf("unmatched:  %d\n", unmatched)
	if extracted > 0 {
		fmt.Printf("coverage:   %.1f%%\n", float64(resolved+fallback)/float64(extracted)*100)
	}
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
