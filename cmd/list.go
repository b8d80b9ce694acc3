package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "new_client", err)
		return nil
	}
	defer client.Close()
	part, err := client.Partition(nil)
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "get_partition", err)
		return nil
	}

	onlyActive := ctx.Bool("active")
	onlyExpired := ctx.Bool("expired")
	showActive := onlyActive || !onlyExpired
	showExpired := onlyExpired || !onlyActive

	var shown int
	if showActive {
		shown += printSection("Active", part.Active)
	}
	if showExpired {
		shown += printSection("Expired", part.Expired)
	}
	if shown == 0 {
		fmt.Println("remindctl: no reminders found")
	}
	return nil
}

func printSection(title string, rems []remindlib.Reminder) int {
	if len(rems) == 0 {
		return 0
	}
	txt := title + " reminders:"
	txt += "\n\n-----------------------------------------------------------------------------------------------------------"
	txt += "\n|Num|              Message              |                  Id                  |        Due          | Status  |"
	txt += "\n|---|-----------------------------------|--------------------------------------|---------------------|---------|"
	for i, rem := range rems {
		msg := rem.Message
		n := len(msg)
		switch {
		case n > 33:
			msg = msg[:30] + "..."
		case n < 33:
			msg = beaut(msg, 33)
		}
		status := "pending"
		if rem.Triggered {
			status = "fired"
		}
		txt += fmt.Sprintf("\n| %d | %s | %s | %s | %s |",
			i+1, msg, rem.ID, common.FormatDue(rem.DueAt), beaut(status, 7))
	}
	txt += "\n-----------------------------------------------------------------------------------------------------------"
	fmt.Println(txt)
	fmt.Println()
	return len(rems)
}

func beaut(s string, n int) (b string) {
	n1 := len(s)
	x := n - n1
	x1 := x / 2
	w := string(
		replic(' ', x1),
	)
	b = w
	b += s
	b += w
	if x%2 != 0 {
		b += " "
	}
	return
}

func replic[aT any](v aT, n int) []aT {
	a := make([]aT, n)
	for i := range a {
		a[i] = v
	}
	return a
}
