package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/bfontes/tavivo/internal/buildinfo"
	"github.com/bfontes/tavivo/internal/client/cli"
	"github.com/bfontes/tavivo/internal/client/config"
	"github.com/bfontes/tavivo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
