package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
)

func add(ctx *cli.Context) error {
	message := ctx.Args().First()
	if message == "" {
		if ctx.Command.Name == "" {
			return common.Help(ctx)
		}
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no message provided"),
		)
	} else if message == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	delay := ctx.Duration("in")
	if delay <= 0 {
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("--in must be a positive duration, e.g. --in 15m"),
		)
	}
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "add", "new_client", err)
		return nil
	}
	defer client.Close()
	rem, err := client.Add(message, delay)
	if err != nil {
		common.PrintRuntimeErr(ctx, "add", "add_reminder", err)
		return nil
	}
	fmt.Printf("Scheduled reminder %s\n  %q due at %s\n",
		rem.ID, rem.Message, common.FormatDue(rem.DueAt))
	return nil
}
