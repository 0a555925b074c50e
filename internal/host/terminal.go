// Package host 在终端环境中实现 action.Host：剪贴板粘贴、通知、窗口与打开链接。
package host

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/config"
	"biu-actions/internal/i18n"
	"biu-actions/internal/logger"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type Options struct {
	// Out 接收 PasteToStdout 模式下的结果。
	Out io.Writer
	// Err 接收通知与窗口。
	Err      io.Writer
	Config   config.Config
	Language i18n.Language
	// PasteToStdout 为 true 时结果写到 Out 而不是系统剪贴板。
	PasteToStdout bool
	NoColor       bool
	// Launcher 和 Clipboard 留空时使用系统实现。
	Launcher  func(url string) error
	Clipboard func(text string) error
}

// Terminal 是命令行与 TUI 使用的宿主实现。
type Terminal struct {
	out      io.Writer
	err      io.Writer
	cfg      config.Config
	lang     i18n.Language
	stdout   bool
	launch   func(string) error
	copyText func(string) error
	styles   styles
	width    int
}

type styles struct {
	title  lipgloss.Style
	body   lipgloss.Style
	window lipgloss.Style
	header lipgloss.Style
}

var _ action.Host = (*Terminal)(nil)

func NewTerminal(opts Options) *Terminal {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	lang := opts.Language
	if lang == "" {
		lang = i18n.Normalize(opts.Config.Language)
	}

	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	profile := termenv.EnvColorProfile()
	if opts.NoColor || !isTTY || errOut != os.Stderr {
		profile = termenv.Ascii
	}
	r := lipgloss.NewRenderer(errOut)
	r.SetColorProfile(profile)

	width := 80
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 20 {
			width = w
		}
	}

	t := &Terminal{
		out:      out,
		err:      errOut,
		cfg:      opts.Config,
		lang:     lang,
		stdout:   opts.PasteToStdout,
		launch:   opts.Launcher,
		copyText: opts.Clipboard,
		width:    width,
		styles: styles{
			title:  r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
			body:   r.NewStyle().Faint(true),
			header: r.NewStyle().Bold(true),
			window: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1),
		},
	}
	if t.launch == nil {
		t.launch = openURL
	}
	if t.copyText == nil {
		t.copyText = clipboard.WriteAll
	}
	return t
}

// PasteText 把结果写入系统剪贴板，或在 stdout 模式下直接输出。
func (t *Terminal) PasteText(text string) error {
	if t.stdout {
		_, err := fmt.Fprintln(t.out, text)
		return err
	}
	if err := t.copyText(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	logger.Named("host").WithField("chars", len([]rune(text))).Debug("pasted to clipboard")
	return nil
}

func (t *Terminal) Notify(title, body string) {
	line := t.styles.title.Render(title)
	if body = strings.TrimSpace(body); body != "" {
		line += " " + t.styles.body.Render(body)
	}
	_, _ = fmt.Fprintln(t.err, line)
}

func (t *Terminal) ShowWindow(w action.Window) error {
	width := w.Width
	if width <= 0 || width > t.width {
		width = t.width
	}
	var content string
	if title := strings.TrimSpace(w.Title); title != "" {
		content = t.styles.header.Render(title) + "\n\n"
	}
	content += w.Body
	_, err := fmt.Fprintln(t.err, t.styles.window.Width(width-2).Render(content))
	return err
}

func (t *Terminal) OpenURL(url string) error {
	logger.Named("host").WithField("url", url).Info("open url")
	return t.launch(url)
}

func (t *Terminal) Config(name, key string) (string, bool) {
	return t.cfg.Plugin(name, key)
}

func (t *Terminal) Language() i18n.Language {
	return t.lang
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
