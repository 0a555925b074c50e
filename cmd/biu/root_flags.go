package main

import (
	"flag"
	"io"
)

type rootArgs struct {
	overrides  []string
	configPath string
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("biu", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var overrides stringSlice
	var cfgPath string
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.biu/config.toml)")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}
	return rootArgs{overrides: append([]string{}, overrides...), configPath: cfgPath}, fs.Args(), nil
}

// prependOverrides 让子命令的 -c 覆盖根级别的同名项。
func prependOverrides(root []string, overrides []string) []string {
	merged := append([]string{}, root...)
	return append(merged, overrides...)
}
