package main

import (
	"flag"
	"fmt"

	"biu-actions/internal/action"

	"github.com/mattn/go-runewidth"
)

// runList 打印全部动作；给出选区时只列出可用的，上下文匹配的动作以 * 标记并排在前面。
func runList(e env, args []string, s streams) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(s.Err)
	var text string
	fs.StringVar(&text, "text", "", "Only list actions available for this text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	reg := buildRegistry(e.cfg, nil)

	actions := reg.All()
	var sel *action.Selection
	if text != "" || fs.NArg() > 0 {
		got, err := readSelection(text, fs.Args(), s)
		if err != nil {
			return err
		}
		sel = &action.Selection{Text: got}
		actions = reg.Available(*sel)
	}

	nameWidth, catWidth := 0, 0
	for _, a := range actions {
		nameWidth = max(nameWidth, runewidth.StringWidth(a.Name()))
		catWidth = max(catWidth, runewidth.StringWidth(a.Category()))
	}
	for _, a := range actions {
		mark := " "
		if sel != nil && a.Available(*sel).ContextMatch {
			mark = "*"
		}
		if _, err := fmt.Fprintf(s.Out, "%s %s  %s  %s\n", mark,
			runewidth.FillRight(a.Name(), nameWidth),
			runewidth.FillRight(a.Category(), catWidth),
			a.Title()); err != nil {
			return err
		}
	}
	return nil
}
