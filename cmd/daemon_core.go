package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/creachadair/jrpc2/handler"
	"github.com/jmhodges/clock"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/internal/hookengine"
	"github.com/remindctl/remindctl/internal/scheduler"
	"github.com/remindctl/remindctl/internal/server"
	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

// DaemonComponents holds all initialized daemon components, so console
// mode and tests share the same wiring and cleanup path.
type DaemonComponents struct {
	Store     remindlib.Store
	Registry  *remindlib.Registry
	Scheduler *scheduler.Scheduler
	Server    *server.Server
	Web       *server.WebServer
	Hooks     *hookengine.Engine

	log       logger.Logger
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Close shuts components down in reverse order of initialization. It is
// safe to call after a stop request has already torn things down.
func (c *DaemonComponents) Close() {
	c.closeOnce.Do(func() {
		if c.Scheduler != nil {
			c.Scheduler.Stop()
		}
		if c.Web != nil {
			_ = c.Web.Shutdown()
		}
		if c.Server != nil {
			_ = c.Server.Shutdown()
		}
		if closer, ok := c.Store.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
		if c.cancel != nil {
			c.cancel()
		}
		c.log.Info("daemon stopped")
	})
}

// Stop tears the daemon down. With flush set it also wipes every
// reminder, in memory and in the persistent store, before shutdown.
// A plain signal-driven shutdown keeps the persisted state intact.
func (c *DaemonComponents) Stop(flush bool) {
	if flush {
		c.log.Info("flushing all reminders before shutdown")
		c.Registry.Flush()
	}
	c.Close()
}

type daemonOptions struct {
	StoreKind    string
	HookScript   string
	TickInterval time.Duration
	Web          bool
	WebPort      int
}

func optionsFromCli(ctx *cli.Context) daemonOptions {
	return daemonOptions{
		StoreKind:    ctx.String("store"),
		HookScript:   ctx.String("hook"),
		TickInterval: ctx.Duration("tick"),
		Web:          ctx.Bool("web"),
		WebPort:      ctx.Int("web-port"),
	}
}

// openStore builds the persistence backend selected by --store.
func openStore(kind string) (remindlib.Store, error) {
	switch kind {
	case "", "file":
		dir, err := remindlib.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		return remindlib.NewFileStore(afero.NewOsFs(), dir), nil
	case "keyring":
		return remindlib.NewKeyringStore(), nil
	case "sqlite":
		dir, err := remindlib.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		return remindlib.NewSQLiteStore(filepath.Join(dir, "reminders.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, keyring or sqlite)", kind)
	}
}

// initDaemonComponents wires store, registry, scheduler and RPC server
// together. The method map is populated after the server exists because
// the scheduler delivers through the server's push notifier.
var initDaemonComponents = func(log logger.Logger, opts daemonOptions) (*DaemonComponents, error) {
	store, err := openStore(opts.StoreKind)
	if err != nil {
		log.Error("store initialization failed: %v", err)
		return nil, err
	}

	c := &DaemonComponents{Store: store, log: log}

	methods := make(handler.Map)
	c.Server = server.NewServer(log, methods, server.TCPPort(), func() {
		if c.Scheduler != nil {
			c.Scheduler.Poke()
		}
	})

	clk := clock.New()
	c.Registry = remindlib.NewRegistry(store, c.Server.Notifier(), clk, log)
	c.Registry.Load()

	tick := opts.TickInterval
	if tick <= 0 {
		tick = DEF_TICK_INTERVAL
	}
	c.Scheduler = scheduler.New(c.Registry, c.Server.Notifier(), clk, log, tick)

	if opts.HookScript != "" {
		c.Hooks, err = hookengine.New(log, opts.HookScript)
		if err != nil {
			log.Error("hook engine initialization failed: %v", err)
			if closer, ok := store.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
			return nil, err
		}
		c.Scheduler.OnTriggered(func(rem remindlib.Reminder) {
			if herr := c.Hooks.OnTrigger(rem); herr != nil {
				log.Warning("trigger hook failed for %s: %v", rem.ID, herr)
			}
		})
	}

	api := server.NewApi(log, c.Registry, c.Scheduler, clk, server.BuildInfo{
		Version:   build.Version,
		Commit:    build.Commit,
		BuildType: build.BuildType,
	}, c.Stop)
	for name, h := range api.Methods() {
		methods[name] = h
	}

	if opts.Web {
		c.Web = server.NewWebServer(log, c.Server, opts.WebPort)
	}
	return c, nil
}
