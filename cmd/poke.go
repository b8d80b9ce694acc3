package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
)

func poke(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "poke", "new_client", err)
		return nil
	}
	defer client.Close()
	if err := client.Poke(); err != nil {
		common.PrintRuntimeErr(ctx, "poke", "poke_daemon", err)
		return nil
	}
	fmt.Println("Daemon poked; overdue reminders will fire now.")
	return nil
}
