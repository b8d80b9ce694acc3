package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"

	"github.com/remindctl/remindctl/cmd/common"
	"github.com/remindctl/remindctl/pkg/remindcli"
)

func watch(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := remindcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "watch", "new_client", err)
		return nil
	}
	defer client.Close()
	part, err := client.Partition(nil)
	if err != nil {
		common.PrintRuntimeErr(ctx, "watch", "get_partition", err)
		return nil
	}
	if len(part.Active) == 0 {
		fmt.Println("remindctl: no active reminders to watch")
		return nil
	}

	start := time.Now().UnixMilli()
	p := mpb.New()
	type watched struct {
		bar   *mpb.Bar
		dueAt int64
	}
	bars := make([]watched, 0, len(part.Active))
	for _, rem := range part.Active {
		label := rem.Message
		if len(label) > 20 {
			label = label[:17] + "..."
		}
		total := rem.DueAt - start
		if total <= 0 {
			continue
		}
		bars = append(bars, watched{
			bar:   common.InitCountdownBar(p, label, total),
			dueAt: rem.DueAt,
		})
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now().UnixMilli()
		pending := 0
		for _, w := range bars {
			elapsed := now - start
			if remaining := w.dueAt - now; remaining > 0 {
				pending++
				w.bar.SetCurrent(elapsed)
			} else {
				w.bar.SetCurrent(w.dueAt - start)
			}
		}
		if pending == 0 {
			break
		}
	}
	p.Wait()
	fmt.Println("All watched reminders are due.")
	return nil
}
