package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"biu-actions/internal/config"
)

// runConfig 支持 path 与 set 两个动作。set 只改写配置文件本身，不会写入环境变量中的值。
func runConfig(e env, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: biu config path | set key=value...")
	}
	path := e.cfg.Source
	switch args[0] {
	case "path":
		_, err := fmt.Fprintln(out, path)
		return err
	case "set":
		pairs := args[1:]
		if len(pairs) == 0 {
			return errors.New("usage: biu config set key=value...")
		}
		for _, kv := range pairs {
			if !strings.Contains(kv, "=") {
				return fmt.Errorf("invalid setting %q, want key=value", kv)
			}
		}
		cfg, err := config.ReadFile(path)
		if err != nil {
			return err
		}
		cfg = config.ApplyKVOverrides(cfg, pairs)
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "updated %s\n", path)
		return err
	}
	return fmt.Errorf("unknown config command %q", args[0])
}
