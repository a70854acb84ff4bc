package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/warpdl/warpcron/cmd/common"
	"github.com/warpdl/warpcron/pkg/cronexpr"
)

func watch(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, "watch")
	}
	expr := expressionArg(ctx)
	if expr == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("no schedule expression provided"))
	}

	e, err := cronexpr.Compile(expr)
	if err != nil {
		common.PrintRuntimeErr(ctx, "watch", "compile", err)
		return nil
	}
	occ, err := e.Next()
	if err != nil {
		common.PrintRuntimeErr(ctx, "watch", "search", err)
		return nil
	}

	target := occ.Value()
	total := int64(time.Until(target).Seconds())
	if total < 1 {
		total = 1
	}

	fmt.Printf("warpcron: next occurrence at %s\n", target.Format(occurrenceLayout))
	p := mpb.New(mpb.WithWidth(64))
	bar := common.InitCountdownBar(p, "Waiting", total)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		remaining := time.Until(target)
		if remaining <= 0 {
			bar.SetCurrent(total)
			break
		}
		bar.SetCurrent(total - int64(remaining.Seconds()))
	}
	p.Wait()

	fmt.Printf("warpcron: fired at %s\n", time.Now().Format(occurrenceLayout))
	return nil
}
