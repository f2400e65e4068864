package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pinedance/datalink/internal/util"
	"github.com/pinedance/datalink/pkg/compiler"
	"github.com/pinedance/datalink/pkg/logger"
	"github.com/pinedance/datalink/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	client := compiler.NewClient(compiler.NewClientParams{
		SourceDir:  util.GetEnvString("DATALINK_SOURCE_DIR", "data/datalink"),
		LegacyFile: util.GetEnvString("DATALINK_LEGACY_FILE", "data/datalink.yaml"),
		ImagesDir:  util.GetEnvString("DATALINK_IMAGES_DIR", "docs/images"),
		OutDir:     util.GetEnvString("DATALINK_OUT_DIR", "site/data"),
	})

	start := time.Now()
	result, err := client.Compile(ctx)
	if err != nil {
		logger.Fatal("Compile failed", "err", err)
	}

	logger.Info(
		"Compile completed",
		"build_id", result.BuildID,
		"source_files", result.SourceFiles,
		"entities", result.Entities,
		"relationships", result.Relationships,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
}
