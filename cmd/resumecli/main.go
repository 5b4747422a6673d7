package main

import (
	"context"
	"log"
	"os"

	"resumecli/internal/buildinfo"
	"resumecli/internal/cli"
	"resumecli/internal/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
