package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"biu-actions/internal/config"
	"biu-actions/internal/llm"
)

func runPing(e env, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var modelOverride string
	var baseURLOverride string
	var apiKeyOverride string
	var timeoutSeconds int
	var overrides stringSlice

	fs.StringVar(&modelOverride, "model", "", "Model name (default from config)")
	fs.StringVar(&baseURLOverride, "base-url", "", "Override base URL (e.g. http://127.0.0.1:1234; trailing /v1 is ok)")
	fs.StringVar(&apiKeyOverride, "api-key", "", "Override API key (prefer config.toml)")
	fs.IntVar(&timeoutSeconds, "timeout", 30, "Timeout seconds")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg := config.ApplyKVOverrides(e.cfg, overrides)

	model := firstNonEmpty(modelOverride, cfg.LLM.Model, config.DefaultModel)
	client, err := llm.New(llm.Options{
		APIKey:  firstNonEmpty(apiKeyOverride, cfg.LLM.Token),
		BaseURL: firstNonEmpty(baseURLOverride, cfg.LLM.URL),
		Model:   model,
	})
	if err != nil {
		return err
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	got, err := client.Ping(ctx, model)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "ok: %s\n", got)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
