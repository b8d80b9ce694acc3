package cmd

import "github.com/urfave/cli"

var (
	addFlags = []cli.Flag{
		cli.DurationFlag{
			Name:  "in, i",
			Usage: "delay before the reminder fires, e.g. 90s, 15m, 2h",
		},
	}
	lsFlags = []cli.Flag{
		cli.BoolFlag{
			Name:  "active, a",
			Usage: "show only reminders that have not reached their due time",
		},
		cli.BoolFlag{
			Name:  "expired, e",
			Usage: "show only reminders whose due time has passed",
		},
	}
	stopFlags = []cli.Flag{
		cli.BoolFlag{
			Name:  "flush, f",
			Usage: "wipe all reminders, in memory and on disk, before stopping",
		},
	}
	daemonFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "store, s",
			Usage: "persistence backend: file, keyring or sqlite",
			Value: "file",
		},
		cli.StringFlag{
			Name:  "hook",
			Usage: "path to a JavaScript hook script run on every trigger",
		},
		cli.DurationFlag{
			Name:  "tick",
			Usage: "scheduler polling interval",
			Value: DEF_TICK_INTERVAL,
		},
		cli.BoolFlag{
			Name:  "web",
			Usage: "also serve the RPC interface over a websocket endpoint",
		},
		cli.IntFlag{
			Name:  "web-port",
			Usage: "port for the websocket endpoint",
			Value: DEF_WEB_PORT,
		},
	}
)
