package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
)

// BuildArgs carries build-time metadata injected by the linker.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var build BuildArgs

// Execute runs the remindctl CLI with the given arguments.
func Execute(args []string, bArgs BuildArgs) error {
	build = bArgs
	common.VersionCmdStr = fmt.Sprintf("remindctl %s-%s (%s/%s) %s %s",
		bArgs.Version, bArgs.BuildType, runtime.GOOS, runtime.GOARCH, bArgs.Date, bArgs.Commit)

	app := cli.App{
		Name:                  "remindctl",
		HelpName:              "remindctl",
		Usage:                 "A persisted one-shot reminder daemon.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "remindctl <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "daemon",
				Usage:              "run the reminder daemon in the foreground",
				Action:             daemon,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        DaemonDescription,
				Flags:              daemonFlags,
			},
			{
				Name:                   "add",
				Aliases:                []string{"a"},
				Usage:                  "schedule a one-shot reminder",
				Action:                 add,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            AddDescription,
				UseShortOptionHandling: true,
				Flags:                  addFlags,
			},
			{
				Name:               "remove",
				Aliases:            []string{"rm"},
				Usage:              "delete a reminder by id",
				Action:             remove,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        RemoveDescription,
			},
			{
				Name:                   "list",
				Aliases:                []string{"ls", "l"},
				Usage:                  "display active and expired reminders",
				Action:                 list,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  lsFlags,
			},
			{
				Name:               "watch",
				Aliases:            []string{"w"},
				Usage:              "live countdown bars for active reminders",
				Action:             watch,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        WatchDescription,
			},
			{
				Name:               "attach",
				Usage:              "stream reminder notifications to the terminal",
				Action:             attach,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        AttachDescription,
			},
			{
				Name:               "poke",
				Usage:              "request an immediate catch-up poll",
				Action:             poke,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        PokeDescription,
			},
			{
				Name:                   "stop",
				Usage:                  "stop the daemon",
				Action:                 stop,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            StopDescription,
				UseShortOptionHandling: true,
				Flags:                  stopFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of remindctl",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		HideHelp:    true,
		HideVersion: true,
	}
	return app.Run(args)
}
