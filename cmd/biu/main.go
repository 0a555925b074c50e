package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"biu-actions/internal/config"
	"biu-actions/internal/logger"
)

var log = logger.Named("cli")

const usage = `biu - selection actions for the terminal

Usage:
  biu [-c key=value] [--config path] <command> [flags] [text...]

Commands:
  list      list actions (available ones when text is given)
  run       run one action on the selection
  pick      choose an action interactively
  cycle     rotate the case style of the text
  catalog   build plugins.json from a plugin repository
  history   show recently performed actions
  config    print the config path or set values in it
  ping      check the LLM endpoint

Selection comes from --text, then the remaining arguments, then piped stdin,
then the system clipboard.
`

func main() {
	logger.Configure("")
	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) == 0 || rest[0] == "help" || rest[0] == "-h" || rest[0] == "--help" {
		_, _ = io.WriteString(os.Stderr, usage)
		return
	}

	e, err := loadEnv(root)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Configure(e.cfg.LogLevel)
	if e.dir != "" {
		if logFile, _, err := logger.SetupFile(filepath.Join(e.dir, logger.DefaultLogPath)); err != nil {
			log.Warnf("failed to initialize log file: %v", err)
		} else {
			defer logFile.Close()
		}
	}

	streams := defaultStreams()
	cmd, args := rest[0], rest[1:]
	switch cmd {
	case "list":
		err = runList(e, args, streams)
	case "run":
		err = runAction(e, args, streams)
	case "pick":
		err = runPick(e, args, streams)
	case "cycle":
		err = runCycle(args, streams)
	case "catalog":
		err = runCatalog(args, streams.Out)
	case "history":
		err = runHistory(e, args, streams.Out)
	case "config":
		err = runConfig(e, args, streams.Out)
	case "ping":
		err = runPing(e, args, streams.Out)
	default:
		_, _ = io.WriteString(os.Stderr, usage)
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		log.Errorf("%s failed: %v", cmd, err)
		_, _ = fmt.Fprintf(os.Stderr, "biu %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

// env 是各子命令共享的运行时状态。
type env struct {
	cfg config.Config
	// dir 保存日志、会话与历史，默认 ~/.biu。
	dir string
}

func loadEnv(root rootArgs) (env, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return env{}, err
	}
	cfg = config.ApplyKVOverrides(cfg, root.overrides)
	dir := config.Dir()
	if root.configPath != "" {
		dir = filepath.Dir(root.configPath)
	}
	return env{cfg: cfg, dir: dir}, nil
}
