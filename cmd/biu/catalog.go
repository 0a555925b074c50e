package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"biu-actions/internal/catalog"
)

func runCatalog(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var root, dest, format string
	fs.StringVar(&root, "root", ".", "Plugin repository root containing README.md")
	fs.StringVar(&dest, "out", "plugins.json", "Output path, - for stdout")
	fs.StringVar(&format, "format", "", "json or yaml (default: from the output extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(dest)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	cat, err := catalog.Build(os.DirFS(root), time.Now())
	if err != nil {
		return err
	}
	if dest == "-" {
		data, err := catalog.Encode(cat, format)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(root, dest)
	}
	if err := catalog.Write(cat, dest, format); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "wrote %d plugins in %d categories to %s\n", len(cat.Plugins), len(cat.Categories), dest)
	return err
}
