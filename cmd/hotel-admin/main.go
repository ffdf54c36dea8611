package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdg-garage/hotel-admin/internal/config"
	"github.com/gdg-garage/hotel-admin/internal/console"
	"github.com/gdg-garage/hotel-admin/internal/notifier"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	var n notifier.Notifier = notifier.NewConsole(os.Stdout)
	if cfg.DiscordBotToken != "" {
		discord, err := notifier.NewDiscordNotifier(cfg)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			n = notifier.NewMulti(n, discord)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := console.New(cfg, os.Stdin, os.Stdout, n)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, console.Describe(err))
		if errors.Is(err, console.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
