package main

import (
	"flag"
	"fmt"
	"strings"

	"biu-actions/internal/casecycle"
)

// runCycle 只做纯文本转换并写到 stdout，不经过剪贴板。
func runCycle(args []string, s streams) error {
	fs := flag.NewFlagSet("cycle", flag.ContinueOnError)
	fs.SetOutput(s.Err)
	var text, to string
	var explain, lines bool
	fs.StringVar(&text, "text", "", "Text to convert (default: arguments, stdin, then clipboard)")
	fs.StringVar(&to, "to", "", "Convert straight to a style: snake|kebab|lower|upper|title|camel|pascal")
	fs.BoolVar(&explain, "explain", false, "Print words and detected/target styles to stderr")
	fs.BoolVar(&lines, "lines", false, "Convert each line on its own")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, err := readSelection(text, fs.Args(), s)
	if err != nil {
		return err
	}

	target := casecycle.Unknown
	if to != "" {
		if target, err = casecycle.ParseStyle(to); err != nil {
			return err
		}
	}
	inputs := []string{in}
	if lines {
		inputs = strings.Split(in, "\n")
	}
	out := make([]string, 0, len(inputs))
	for _, line := range inputs {
		if target != casecycle.Unknown {
			out = append(out, casecycle.Convert(line, target))
			continue
		}
		res := casecycle.Explain(line)
		if explain {
			_, _ = fmt.Fprintf(s.Err, "words=%q detected=%s target=%s\n", res.Words, res.Detected, res.Target)
		}
		out = append(out, res.Output)
	}
	_, err = fmt.Fprintln(s.Out, strings.Join(out, "\n"))
	return err
}
