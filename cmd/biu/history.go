package main

import (
	"flag"
	"fmt"
	"io"
)

func runHistory(e env, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var n int
	fs.IntVar(&n, "n", 20, "Number of entries to show (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	entries, err := e.history().Recent(n)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		status := "ok"
		if !entry.OK {
			status = "failed: " + entry.Error
		}
		if _, err := fmt.Fprintf(out, "%s  %-10s %5d chars  %s\n",
			entry.TS.Local().Format("2006-01-02 15:04:05"), entry.Action, entry.Chars, status); err != nil {
			return err
		}
	}
	return nil
}
