package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/journey/internal/config"
	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/logger"
	"github.com/julianstephens/journey/internal/web"
)

type ServeCmd struct {
	Addr  string `help:"Listen address (default from site config, then :8080)." env:"JOURNEY_ADDR"`
	Watch bool   `help:"Reload the site config file when it changes."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(sigCtx, ctx)
}

func (c *ServeCmd) run(parent context.Context, ctx *Context) error {
	srv, err := web.New(ctx.Journal, ctx.Site)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	addr := ResolveAddr(c.Addr, ctx.Site.Get())

	g, gctx := errgroup.WithContext(parent)
	g.Go(func() error {
		logger.Info("serving journal", "addr", addr, "store", ctx.Store.GetConfigPath())
		return srv.Run(gctx, addr)
	})
	if c.Watch && ctx.SitePath != "" {
		g.Go(func() error {
			return config.Watch(gctx, ctx.SitePath, constants.WatchDebounce, ctx.Site.Set)
		})
	}
	return g.Wait()
}
