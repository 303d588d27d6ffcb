package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/trendwatch"
	trendhttp "github.com/fwojciec/trendwatch/http"
)

// sessionCleanupInterval is how often expired sessions are purged.
const sessionCleanupInterval = time.Hour

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}

	server := trendhttp.NewServer()
	server.Addr = addr
	server.Logger = deps.Logger
	server.SessionService = deps.Sessions
	server.UserService = deps.Users
	server.ReportStore = deps.Reports
	server.ReportGenerator = deps.Generator
	server.Assistant = deps.Assistant
	server.VideoFinder = deps.Videos
	server.LeaderboardService = deps.Leaderboard
	server.LeaderboardDir = deps.Config.DataDir

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Open(); err != nil {
		return fmt.Errorf("start server on %s: %w", addr, err)
	}
	fmt.Fprintf(deps.Stdout, "trendwatch %s listening on %s\n", trendwatch.Version, server.URL())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return server.Close()
	})
	g.Go(func() error {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				n, err := deps.Sessions.DeleteExpiredSessions(gctx)
				if err != nil {
					deps.Logger.Warn("session cleanup", "err", err)
				} else if n > 0 {
					deps.Logger.Info("session cleanup", "deleted", n)
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, "shutdown complete")
	return nil
}
