package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/warpcron/cmd/common"
	"github.com/warpdl/warpcron/internal/scheduler"
	"github.com/warpdl/warpcron/internal/tabfile"
	"github.com/warpdl/warpcron/pkg/cronexpr"
	"github.com/warpdl/warpcron/pkg/logger"
)

var (
	runFile string

	runFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "file, f",
			Usage:       "path of the schedule table to load (default: ./warptab)",
			Value:       "warptab",
			Destination: &runFile,
		},
	}
)

func run(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, "run")
	}

	l := logger.NewStandardLogger(log.New(os.Stdout, "", log.LstdFlags))
	defer l.Close()

	entries, err := tabfile.Load(afero.NewOsFs(), runFile)
	if err != nil {
		common.PrintRuntimeErr(ctx, "run", "load", err)
		return nil
	}
	if len(entries) == 0 {
		fmt.Println("warpcron: no schedules found")
		return nil
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The jobs map is filled before the scheduler can fire anything, and is
	// read-only afterwards — triggers run on the scheduler goroutine.
	jobs := make(map[string]tabfile.Entry, len(entries))
	for _, entry := range entries {
		jobs[entryID(entry)] = entry
	}

	s := scheduler.New(runCtx, func(id string) {
		entry, ok := jobs[id]
		if !ok {
			return
		}
		go execJob(l, entry)
	})

	for _, entry := range entries {
		e, err := cronexpr.Compile(entry.Expr)
		if err != nil {
			l.Warning("line %d: %v", entry.Line, err)
			continue
		}
		occ, err := e.Next()
		if err != nil {
			l.Warning("line %d: no upcoming occurrence: %v", entry.Line, err)
			continue
		}
		s.Add(scheduler.Event{
			ID:        entryID(entry),
			TriggerAt: occ.Value(),
			Schedule:  e,
		})
		l.Info("line %d: %s -> next %s", entry.Line, entry.Expr, occ.Value().Format(occurrenceLayout))
	}

	l.Info("warpcron running with %d schedules, press Ctrl+C to stop", len(entries))
	<-runCtx.Done()
	l.Info("shutting down")
	return nil
}

func entryID(entry tabfile.Entry) string {
	return fmt.Sprintf("line-%d", entry.Line)
}

// execJob runs one table entry's command and logs the outcome. It is spawned
// on its own goroutine so a slow job never delays the scheduler loop.
func execJob(l logger.Logger, entry tabfile.Entry) {
	start := time.Now()
	out, err := exec.Command(entry.Command[0], entry.Command[1:]...).CombinedOutput()
	if err != nil {
		l.Error("line %d: %s: %v", entry.Line, entry.Command[0], err)
	} else {
		l.Info("line %d: %s completed in %s", entry.Line, entry.Command[0], time.Since(start).Round(time.Millisecond))
	}
	if len(out) > 0 {
		os.Stdout.Write(out)
	}
}
