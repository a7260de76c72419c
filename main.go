package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/onestop/internal/app"
	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/config"
	"github.com/llehouerou/onestop/internal/errmsg"
	"github.com/llehouerou/onestop/internal/icons"
	"github.com/llehouerou/onestop/internal/mpris"
	"github.com/llehouerou/onestop/internal/notify"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/player"
	"github.com/llehouerou/onestop/internal/stderr"
	"github.com/llehouerou/onestop/internal/ui/albumart"
	"github.com/llehouerou/onestop/internal/ui/playerbar"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	icons.Init(cfg.Icons)

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logFile, err := tea.LogToFile(logPath, config.AppName)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Decoder and audio backend warnings would corrupt the TUI.
	if err := stderr.Start(); err != nil {
		log.Printf("stderr capture: %v", err)
	}
	defer stderr.Stop()

	cc := cfg.GetCatalogConfig()
	element := player.New(
		player.WithUserAgent(cc.UserAgent),
		player.WithTimeUpdateInterval(cfg.TimeUpdateInterval()),
	)
	ctrl := playback.New(element, playback.WithVolume(cfg.InitialVolume()))

	client := catalog.NewClient(
		catalog.WithURL(cc.URL),
		catalog.WithMethod(cc.Method),
		catalog.WithTimeout(cfg.CatalogTimeout()),
		catalog.WithUserAgent(cc.UserAgent),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var bg errgroup.Group
	closeIntegrations := startIntegrations(ctx, cfg, ctrl, &bg)

	displayMode := playerbar.ModeCompact
	if cfg.ExpandedDisplay() {
		displayMode = playerbar.ModeExpanded
	}
	m := app.New(ctrl, client,
		app.WithContext(ctx),
		app.WithDisplayMode(displayMode),
		app.WithAlbumArt(albumart.New(albumart.Detect(), 0)),
	)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	cancel()
	closeIntegrations()
	if err := ctrl.Close(); err != nil {
		log.Printf("close player: %v", err)
	}
	if err := bg.Wait(); err != nil {
		log.Printf("background: %v", err)
	}
	return runErr
}

// startIntegrations connects the desktop integrations in parallel. They are
// optional: failures are logged and the player runs without them. Long
// running watchers are added to bg. The returned func releases them.
func startIntegrations(ctx context.Context, cfg *config.Config, ctrl *playback.Controller, bg *errgroup.Group) func() {
	var (
		notifier notify.Notifier
		adapter  *mpris.Adapter
		g        errgroup.Group
	)

	if cfg.NotificationsEnabled() {
		g.Go(func() error {
			n, err := notify.New()
			if err != nil {
				return fmt.Errorf("notifications: %w", err)
			}
			notifier = n
			return nil
		})
	}
	if cfg.MPRISEnabled() {
		g.Go(func() error {
			a, err := mpris.New(ctrl)
			if err != nil {
				return fmt.Errorf("mpris: %w", err)
			}
			adapter = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Print(errmsg.Format(errmsg.OpInitialize, err))
	}

	if notifier != nil {
		sub := ctrl.Subscribe()
		bg.Go(func() error {
			return notify.Watch(ctx, notifier, sub)
		})
	}

	return func() {
		if adapter != nil {
			if err := adapter.Close(); err != nil {
				log.Printf("mpris: %v", err)
			}
		}
	}
}
