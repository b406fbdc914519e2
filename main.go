package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soundtrack-app/soundtrack/auth"
	"github.com/soundtrack-app/soundtrack/config"
	"github.com/soundtrack-app/soundtrack/player"
	"github.com/soundtrack-app/soundtrack/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr, err := player.NewMPVPlayer(ctx)
	if err != nil {
		log.Fatalf("player init failed: %v", err)
	}

	sessions := auth.NewManager(cfg.Client.ID, cfg.Client.APIVersion, cfg.Player.GetHTTPTimeout())

	app := ui.NewApp(ctx, cfg, sessions, plr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down...")
		cancel()
		app.Stop()
		// the terminal may be left in raw mode if tview never returns
		go func() {
			time.Sleep(2 * time.Second)
			os.Exit(1)
		}()
	}()

	runErr := app.Run()

	cancel()
	plr.Cleanup()
	sessions.Logout()

	if runErr != nil {
		log.Fatalf("application error: %v", runErr)
	}
}
