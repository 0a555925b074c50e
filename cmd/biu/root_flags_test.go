package main

import (
	"reflect"
	"testing"
)

func TestParseRootArgsStopsAtSubcommand(t *testing.T) {
	orig := []string{"run", "--stdout", "case", "hello"}
	root, rest, err := parseRootArgs(orig)
	if err != nil {
		t.Fatalf("parseRootArgs returned error: %v", err)
	}
	if len(root.overrides) != 0 || root.configPath != "" {
		t.Fatalf("expected empty root args, got %+v", root)
	}
	if !reflect.DeepEqual(rest, orig) {
		t.Fatalf("expected rest to preserve args %v, got %v", orig, rest)
	}
}

func TestParseRootArgsExtractsOverrides(t *testing.T) {
	args := []string{
		"-c", "model=gpt-x",
		"-c=plugins.clean.sortLines=true",
		"--config", "/tmp/biu.toml",
		"list",
	}
	root, rest, err := parseRootArgs(args)
	if err != nil {
		t.Fatalf("parseRootArgs returned error: %v", err)
	}
	expectedOverrides := []string{"model=gpt-x", "plugins.clean.sortLines=true"}
	if !reflect.DeepEqual(root.overrides, expectedOverrides) {
		t.Fatalf("unexpected overrides: got %v, want %v", root.overrides, expectedOverrides)
	}
	if root.configPath != "/tmp/biu.toml" {
		t.Fatalf("configPath = %q", root.configPath)
	}
	if !reflect.DeepEqual(rest, []string{"list"}) {
		t.Fatalf("unexpected rest args: %v", rest)
	}
	if got := prependOverrides(root.overrides, []string{"model=other"}); got[len(got)-1] != "model=other" {
		t.Fatalf("prependOverrides = %v", got)
	}
}

func TestParseRootArgsRejectsUnknownFlag(t *testing.T) {
	if _, _, err := parseRootArgs([]string{"--nope"}); err == nil {
		t.Fatalf("expected error for unknown root flag")
	}
}
