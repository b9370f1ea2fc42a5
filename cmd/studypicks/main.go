// Package main runs the studypicks command line: the recommendation page
// served over HTTP, exported as static HTML, or previewed in a terminal.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	studypickscmd "github.com/louisbranch/studypicks/internal/cmd/studypicks"
	"github.com/louisbranch/studypicks/internal/platform/config"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	log.SetPrefix("[STUDYPICKS] ")
	cfg, err := studypickscmd.ParseConfig()
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := studypickscmd.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		stop()
		config.Exitf("studypicks: %v", err)
	}
}
