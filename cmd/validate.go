package cmd

import (
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcron/cmd/common"
	"github.com/warpdl/warpcron/pkg/cronexpr"
)

func validate(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, "validate")
	}
	expr := expressionArg(ctx)
	if expr == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("no schedule expression provided"))
	}

	if _, err := cronexpr.Compile(expr); err != nil {
		return cli.NewExitError(fmt.Sprintf("warpcron: %s", err.Error()), 1)
	}
	fmt.Printf("warpcron: %q is a valid schedule expression\n", expr)
	return nil
}
