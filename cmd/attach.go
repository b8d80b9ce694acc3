package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	ctypes "github.com/remindctl/remindctl/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
)

func attach(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "attach", "new_client", err)
		return nil
	}
	defer client.Close()

	client.OnNotify(ctypes.NotifyReminderSet, remindcli.NewReminderHandler(
		func(n *ctypes.ReminderNotification) error {
			fmt.Printf("[set]     %q due at %s\n", n.Message, common.FormatDue(n.DueAt))
			return nil
		}))
	client.OnNotify(ctypes.NotifyReminderTrigger, remindcli.NewReminderHandler(
		func(n *ctypes.ReminderNotification) error {
			fmt.Printf("[trigger] %s\n", n.Message)
			return nil
		}))

	fmt.Println("Attached. Waiting for reminders (Ctrl-C to detach)...")
	return client.Listen()
}
