// Package catalog 扫描插件目录与 README，生成插件商店使用的目录文件。
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"biu-actions/internal/logger"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DownloadBaseURL 是插件包的下载前缀。
const DownloadBaseURL = "https://github.com/SwiftBiu/SwiftBiuX-Template/releases/latest/download/"

// FallbackCategory 用于 README 中没有列出的插件。
const FallbackCategory = "utilities"

const (
	TypeLocal   = "Local"
	TypeNetwork = "Network"
	TypeWebApp  = "Web App"
)

var knownAuthors = map[string]string{
	"zwpaper": "https://github.com/zwpaper",
}

type Text struct {
	En string `json:"en" yaml:"en"`
	Zh string `json:"zh" yaml:"zh"`
}

type Category struct {
	ID    string `json:"id" yaml:"id"`
	Title Text   `json:"title" yaml:"title"`
	Icon  string `json:"icon" yaml:"icon"`
}

type Plugin struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description Text   `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Version     string `json:"version" yaml:"version"`
	Type        string `json:"type" yaml:"type"`
	Author      string `json:"author" yaml:"author"`
	AuthorURL   string `json:"authorUrl,omitempty" yaml:"authorUrl,omitempty"`
	DownloadURL string `json:"downloadUrl" yaml:"downloadUrl"`
	CategoryID  string `json:"categoryId" yaml:"categoryId"`
}

type Catalog struct {
	GeneratedAt string     `json:"generatedAt" yaml:"generatedAt"`
	Categories  []Category `json:"categories" yaml:"categories"`
	Plugins     []Plugin   `json:"plugins" yaml:"plugins"`
}

// manifest 只声明目录需要的字段。
type manifest struct {
	Identifier  string          `json:"identifier"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Version     string          `json:"version"`
	Author      string          `json:"author"`
	Permissions []string        `json:"permissions"`
	UI          json.RawMessage `json:"ui"`
}

func (m manifest) pluginType() string {
	if len(m.UI) > 0 && string(m.UI) != "null" {
		return TypeWebApp
	}
	for _, p := range m.Permissions {
		if p == "network" {
			return TypeNetwork
		}
	}
	return TypeLocal
}

// Build 读取 root 下的 README.md 与各插件的 manifest.json。README 缺失时所有插件归入 utilities。
func Build(fsys fs.FS, now time.Time) (Catalog, error) {
	var sections Sections
	readme, err := fs.ReadFile(fsys, "README.md")
	switch {
	case err == nil:
		sections = ParseReadme(string(readme))
	case errors.Is(err, fs.ErrNotExist):
		logger.Named("catalog").Warn("README.md not found; every plugin falls back to utilities")
	default:
		return Catalog{}, fmt.Errorf("read README.md: %w", err)
	}

	plugins, err := Scan(fsys, sections.PluginCategory)
	if err != nil {
		return Catalog{}, err
	}
	cat := Catalog{
		GeneratedAt: now.UTC().Format("2006-01-02T15:04:05.000Z"),
		Categories:  sections.Categories,
		Plugins:     plugins,
	}
	if cat.Categories == nil {
		cat.Categories = []Category{}
	}
	logger.Named("catalog").Infof("found %d categories and %d plugins", len(cat.Categories), len(cat.Plugins))
	return cat, nil
}

// Scan 查找一级子目录中的 manifest.json。解析失败的插件记录日志后跳过。
func Scan(fsys fs.FS, categories map[string]string) ([]Plugin, error) {
	log := logger.Named("catalog")
	matches, err := doublestar.Glob(fsys, "*/manifest.json")
	if err != nil {
		return nil, fmt.Errorf("glob manifests: %w", err)
	}
	sort.Strings(matches)

	plugins := []Plugin{}
	for _, match := range matches {
		dir := path.Dir(match)
		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			log.Warnf("skip %s: %v", dir, err)
			continue
		}
		var m manifest
		if err := json.Unmarshal(data, &m); err != nil {
			log.Warnf("skip %s: %v", dir, err)
			continue
		}
		category := categories[dir]
		if category == "" {
			category = FallbackCategory
		}
		p := Plugin{
			ID:          m.Identifier,
			Name:        m.Name,
			Description: Text{En: m.Description, Zh: m.Description},
			Icon:        m.Icon,
			Version:     m.Version,
			Type:        m.pluginType(),
			Author:      m.Author,
			AuthorURL:   knownAuthors[m.Author],
			DownloadURL: DownloadBaseURL + dir + ".swiftbiux",
			CategoryID:  category,
		}
		if p.Icon == "" {
			p.Icon = "extension"
		}
		if p.Author == "" {
			p.Author = "Unknown"
		}
		log.WithField("category", category).Debugf("processed %s (%s)", p.Name, dir)
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// Encode 以 json（两空格缩进）或 yaml 格式序列化目录。
func Encode(cat Catalog, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cat); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "yaml", "yml":
		return yaml.Marshal(cat)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}

// Write 把目录写到 path，必要时创建父目录。
func Write(cat Catalog, dest, format string) error {
	data, err := Encode(cat, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
