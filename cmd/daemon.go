package cmd

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/logger"
)

func daemon(ctx *cli.Context) error {
	l := logger.NewStandardLogger(log.New(os.Stderr, "remindctl: ", log.LstdFlags))

	c, err := initDaemonComponents(l, optionsFromCli(ctx))
	if err != nil {
		common.PrintRuntimeErr(ctx, "daemon", "init", err)
		return nil
	}

	if err := WritePidFile(); err != nil {
		l.Warning("could not write pid file: %v", err)
	}
	defer func() {
		if err := RemovePidFile(); err != nil {
			l.Warning("could not remove pid file: %v", err)
		}
	}()

	runCtx, cancel := setupShutdownHandler()
	c.cancel = cancel
	defer c.Close()

	c.Scheduler.Start(runCtx)

	if c.Web != nil {
		go func() {
			if werr := c.Web.Start(runCtx); werr != nil {
				l.Error("websocket endpoint failed: %v", werr)
			}
		}()
	}

	if err := c.Server.Start(runCtx); err != nil {
		common.PrintRuntimeErr(ctx, "daemon", "serve", err)
	}
	return nil
}
