package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// streams 抽象命令的输入输出，测试时替换为内存实现。
type streams struct {
	In io.Reader
	// InTTY 为 true 时不从 In 读取选区。
	InTTY bool
	Out   io.Writer
	Err   io.Writer
	// ReadClipboard 在没有其他来源时提供选区。
	ReadClipboard func() (string, error)
}

func defaultStreams() streams {
	return streams{
		In:            os.Stdin,
		InTTY:         term.IsTerminal(int(os.Stdin.Fd())),
		Out:           os.Stdout,
		Err:           os.Stderr,
		ReadClipboard: clipboard.ReadAll,
	}
}

var errNoSelection = errors.New("no selection: pass --text, arguments, stdin or copy something first")

// readSelection 依次尝试 --text、位置参数、管道输入与剪贴板。
func readSelection(text string, args []string, s streams) (string, error) {
	if text != "" {
		return text, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if !s.InTTY && s.In != nil {
		data, err := io.ReadAll(s.In)
		if err != nil {
			return "", err
		}
		if len(data) > 0 {
			return trimNewline(string(data)), nil
		}
	}
	if s.ReadClipboard != nil {
		got, err := s.ReadClipboard()
		if err == nil && got != "" {
			return got, nil
		}
		if err != nil {
			log.Debugf("read clipboard: %v", err)
		}
	}
	return "", errNoSelection
}

// trimNewline 去掉管道输入末尾的一个换行，保留其余空白。
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
