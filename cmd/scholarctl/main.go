package main

import (
	"context"
	"log"
	"os"

	"github.com/aussiebroadwan/scholarsync/internal/client/cli"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app := cli.NewApp(cfg, os.Stdin, os.Stdout)
	defer app.Close()

	if err := app.Run(context.Background()); err != nil {
		log.Printf("scholarctl: %v", err)
		app.Close()
		os.Exit(1)
	}
}
