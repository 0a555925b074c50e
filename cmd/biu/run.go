package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/config"
	"biu-actions/internal/host"
	"biu-actions/internal/llm"
	"biu-actions/internal/session"
)

// actionFlags 是 run 与 pick 共用的参数。
type actionFlags struct {
	text      string
	stdout    bool
	noColor   bool
	overrides stringSlice
}

func (f *actionFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.text, "text", "", "Selection text (default: arguments, stdin, then clipboard)")
	fs.BoolVar(&f.stdout, "stdout", false, "Print results instead of writing the clipboard")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors in notifications")
	fs.Var(&f.overrides, "c", "Override config value key=value (repeatable)")
}

func (f *actionFlags) host(cfg config.Config, s streams) *host.Terminal {
	return host.NewTerminal(host.Options{
		Out:           s.Out,
		Err:           s.Err,
		Config:        cfg,
		PasteToStdout: f.stdout,
		NoColor:       f.noColor,
	})
}

func runAction(e env, args []string, s streams) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(s.Err)
	var f actionFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: biu run [flags] <action> [text...]")
	}
	name := strings.ToLower(fs.Arg(0))
	cfg := config.ApplyKVOverrides(e.cfg, f.overrides)

	text, err := readSelection(f.text, fs.Args()[1:], s)
	if err != nil {
		return err
	}
	sess := e.resumeSession()
	reg := buildRegistry(cfg, sess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := action.Run(ctx, reg, name, action.Selection{Text: text}, f.host(cfg, s))
	if errors.Is(runErr, action.ErrUnknownAction) {
		return runErr
	}
	e.record(name, text, runErr)
	if name == "chat" {
		e.saveSession(sess)
	}
	return runErr
}

func (e env) resumeSession() *llm.Session {
	if e.dir == "" {
		return llm.NewSession()
	}
	return e.sessions().Resume(session.DefaultIdle, time.Now())
}

func (e env) saveSession(sess *llm.Session) {
	if e.dir == "" || sess == nil {
		return
	}
	if err := e.sessions().Save(sess); err != nil {
		log.Warnf("save chat session: %v", err)
	}
}
