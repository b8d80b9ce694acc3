// Package common provides shared helpers for remindctl CLI commands:
// error printing, help display, and countdown progress bars.
package common

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// VersionCmdStr holds the formatted version string displayed by the
// version command. It is populated at runtime by Execute with build-time
// information.
var VersionCmdStr string

var (
	showAppHelpAndExit = cli.ShowAppHelpAndExit
	showCommandHelp    = cli.ShowCommandHelp
)

// InitCountdownBar creates a progress bar counting down to a reminder's
// due time. The bar total is the number of milliseconds between start
// and due; the caller advances it as time passes.
func InitCountdownBar(p *mpb.Progress, label string, totalMillis int64) *mpb.Bar {
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")

	bar := p.New(totalMillis,
		barStyle,
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label) + 1, C: decor.DindentRight}),
			decor.OnComplete(
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}), "due!",
			),
		),
	)
	bar.EnableTriggerComplete()
	return bar
}

// Help shows the application help and exits.
func Help(ctx *cli.Context) error {
	showAppHelpAndExit(ctx, 0)
	return nil
}

// GetVersion prints the version string to stdout.
func GetVersion(ctx *cli.Context) error {
	fmt.Println(VersionCmdStr)
	return nil
}

// UsageErrorCallback prints a usage error followed by the relevant help
// text.
func UsageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	if ctx.Command.Name != "" {
		return PrintErrWithCmdHelp(ctx, err)
	}
	return PrintErrWithHelp(ctx, err)
}

// PrintRuntimeErr formats and prints a runtime error to stdout. It
// includes the application name, command name, action identifier, and
// the error message. ctx may be nil, in which case the application name
// is derived from os.Args[0].
func PrintRuntimeErr(ctx *cli.Context, cmd, action string, err error) {
	if err == nil {
		fmt.Println("err is nil", "[", cmd, "|", action, "]")
		return
	}
	var name string
	if ctx != nil {
		name = ctx.App.HelpName
	} else {
		name = os.Args[0]
	}
	fmt.Printf("%s: %s[%s]: %s\n", name, cmd, action, err.Error())
}

// PrintErrWithCmdHelp prints the error message followed by the current
// command's help text.
func PrintErrWithCmdHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(ctx, err, func() {
		if herr := showCommandHelp(ctx, ctx.Command.Name); herr != nil {
			fmt.Println(herr.Error())
		}
	})
}

// PrintErrWithHelp prints the error message followed by the
// application-level help text.
func PrintErrWithHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(ctx, err, func() {
		showAppHelpAndExit(ctx, 1)
	})
}

func printErrWithCallback(ctx *cli.Context, err error, callback func()) error {
	if err == nil {
		return nil
	}
	fmt.Printf("%s: %s\n\n", ctx.App.HelpName, err.Error())
	callback()
	return nil
}

// FormatDue renders an epoch-milliseconds due time for display.
func FormatDue(dueAt int64) string {
	return time.UnixMilli(dueAt).Local().Format("2006-01-02 15:04:05")
}
