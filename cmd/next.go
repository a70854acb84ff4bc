package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcron/cmd/common"
	"github.com/warpdl/warpcron/pkg/cronexpr"
)

// occurrenceLayout is the display and --from input layout for instants.
const occurrenceLayout = "2006-01-02 15:04:05"

var (
	nextCount int
	nextFrom  string

	nextFlags = []cli.Flag{
		cli.IntFlag{
			Name:        "count, n",
			Usage:       "number of occurrences to print (default: 1)",
			Value:       1,
			Destination: &nextCount,
		},
		cli.StringFlag{
			Name:        "from, f",
			Usage:       "reference instant in YYYY-MM-DD HH:MM:SS format (default: now)",
			Destination: &nextFrom,
		},
	}
)

// parseFrom validates and parses a --from value.
// Returns the parsed time or an error with the expected format.
func parseFrom(value string) (time.Time, error) {
	t, err := time.ParseInLocation(occurrenceLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("error: invalid --from format, expected YYYY-MM-DD HH:MM:SS")
	}
	return t, nil
}

// expressionArg joins the command arguments back into one expression so the
// seven fields may be passed either quoted or as bare arguments.
func expressionArg(ctx *cli.Context) string {
	return strings.TrimSpace(strings.Join(ctx.Args(), " "))
}

func next(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, "next")
	}
	expr := expressionArg(ctx)
	if expr == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("no schedule expression provided"))
	}

	ref := time.Now()
	if nextFrom != "" {
		var err error
		ref, err = parseFrom(nextFrom)
		if err != nil {
			common.PrintRuntimeErr(ctx, "next", "parse_from", err)
			return nil
		}
	}

	e, err := cronexpr.CompileFrom(expr, ref)
	if err != nil {
		common.PrintRuntimeErr(ctx, "next", "compile", err)
		return nil
	}

	count := nextCount
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		occ, err := e.Next()
		if err != nil {
			if errors.Is(err, cronexpr.ErrNoOccurrence) && i > 0 {
				fmt.Println("warpcron: no further occurrences")
				return nil
			}
			common.PrintRuntimeErr(ctx, "next", "search", err)
			return nil
		}
		fmt.Println(occ.Value().Format(occurrenceLayout))
	}
	return nil
}
