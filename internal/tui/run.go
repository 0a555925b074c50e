package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回工具栏退出后的必要信息。
type Result struct {
	Performed []string
}

// Run 封装 Bubble Tea 入口。工具栏输出到 stderr，stdout 留给管道。
func Run(opts Options, programOptions ...tea.ProgramOption) (Result, error) {
	program := tea.NewProgram(New(opts), programOptions...)
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	picker, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{Performed: picker.Performed()}, nil
}
