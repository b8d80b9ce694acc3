package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
)

func stop(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	flush := ctx.Bool("flush")
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "stop", "new_client", err)
		return nil
	}
	defer client.Close()
	if err := client.Stop(flush); err != nil {
		common.PrintRuntimeErr(ctx, "stop", "stop_daemon", err)
		return nil
	}
	if flush {
		fmt.Println("Daemon stopping; all reminders flushed.")
	} else {
		fmt.Println("Daemon stopping; reminders remain persisted.")
	}
	return nil
}
