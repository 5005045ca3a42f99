package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aanand-mishra/students-roster/internal/table"
	"github.com/aanand-mishra/students-roster/internal/types"
	"github.com/aanand-mishra/students-roster/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRun_DispatchesArgs(t *testing.T) {
	var got []string
	var out bytes.Buffer

	c := New(strings.NewReader("echo  hello world \n\n   echo x\nquit\necho never\n"), &out, FormatText).WithLogger(quiet)
	c.HandleFunc("echo", "echo <text>", func(o *Output, args string) error {
		got = append(got, args)
		return nil
	})

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []string{" hello world ", "x"}, got)
}

func TestRun_UnknownAndFailingCommands(t *testing.T) {
	var out bytes.Buffer

	c := New(strings.NewReader("bogus\nfail\n"), &out, FormatText).WithLogger(quiet)
	c.HandleFunc("fail", "fail", func(o *Output, args string) error {
		return errors.New("kaput")
	})

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), `comando desconhecido "bogus"`)
	assert.Contains(t, out.String(), "! Erro: kaput")
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer

	c := New(strings.NewReader("HELP\n"), &out, FormatText).WithLogger(quiet)
	c.HandleFunc("list", "list", func(*Output, string) error { return nil })
	c.HandleFunc("show", "show <id>", func(*Output, string) error { return nil })

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, "Comandos:\n  list\n  show <id>\n  help\n  quit\n", out.String())
}

func TestRun_ContextCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := New(r, io.Discard, FormatText).WithLogger(quiet)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestOutput_TextSummary(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, FormatText)

	o.Summary(table.New(nil).Summary(nil))
	assert.Equal(t, "Alunos Cadastrados (0 alunos)\n  Nenhum aluno cadastrado ainda.\n  Use o formulário acima para adicionar alunos.\n", out.String())

	out.Reset()
	o.Summary(table.New(nil).Summary([]types.Student{{ID: "s1", Name: "Ana", Age: 25, Belt: "Azul"}}))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Alunos Cadastrados (1 aluno)\n"))
	assert.Contains(t, text, "Ana")
	assert.Contains(t, text, "s1")
}

func TestOutput_JSON(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, FormatJSON)

	o.Notice(response.Success("Aluno cadastrado!", "Ana foi adicionado com sucesso."))

	var doc struct {
		Kind string          `json:"kind"`
		Data response.Notice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "notice", doc.Kind)
	assert.Equal(t, "Aluno cadastrado!", doc.Data.Title)
}

func TestOutput_UnknownFormatIsText(t *testing.T) {
	var out bytes.Buffer
	NewOutput(&out, "yaml").Message("oi")
	assert.Equal(t, "oi\n", out.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestOutput_JSONWriteFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	out := NewOutput(brokenWriter{}, FormatJSON).
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	out.Message("oi")

	assert.Contains(t, logs.String(), "failed to write output")
	assert.Contains(t, logs.String(), "kind=message")
	assert.Contains(t, logs.String(), "broken pipe")
}
