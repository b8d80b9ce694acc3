package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
)

func remove(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		if ctx.Command.Name == "" {
			return common.Help(ctx)
		}
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no reminder id provided"),
		)
	} else if id == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "remove", "new_client", err)
		return nil
	}
	defer client.Close()
	removed, err := client.Remove(id)
	if err != nil {
		common.PrintRuntimeErr(ctx, "remove", "remove_reminder", err)
		return nil
	}
	if removed {
		fmt.Printf("Removed reminder %s\n", id)
	} else {
		fmt.Printf("No reminder with id %s\n", id)
	}
	return nil
}
