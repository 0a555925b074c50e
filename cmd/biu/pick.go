package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"biu-actions/internal/action"
	"biu-actions/internal/config"
	"biu-actions/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func runPick(e env, args []string, s streams) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(s.Err)
	var f actionFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg := config.ApplyKVOverrides(e.cfg, f.overrides)
	text, err := readSelection(f.text, fs.Args(), s)
	if err != nil {
		return err
	}
	sess := e.resumeSession()
	reg := buildRegistry(cfg, sess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// 选区可能来自管道，键盘输入改从 /dev/tty 读取。
	res, err := tui.Run(tui.Options{
		Registry:  reg,
		Selection: action.Selection{Text: text},
		Host:      f.host(cfg, s),
		Context:   ctx,
	}, tea.WithOutput(s.Err), tea.WithInputTTY(), tea.WithContext(ctx))
	if err != nil {
		return err
	}
	for _, name := range res.Performed {
		e.record(name, text, nil)
		if name == "chat" {
			e.saveSession(sess)
		}
	}
	return nil
}
