package plugins

import (
	"context"
	"testing"

	"biu-actions/internal/action"
	"biu-actions/internal/host"
	"biu-actions/internal/llm"

	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, a action.Action, text string, rec *host.Recorder) {
	t.Helper()
	require.NoError(t, a.Perform(context.Background(), action.Selection{Text: text}, rec))
}

type fakeCompleter struct {
	reply string
	err   error
	calls [][]llm.Message
	model string
}

func (f *fakeCompleter) Complete(_ context.Context, messages []llm.Message, model string) (string, error) {
	f.calls = append(f.calls, append([]llm.Message(nil), messages...))
	f.model = model
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
