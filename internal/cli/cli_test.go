package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/charkit/editor"
	"github.com/randalmurphal/charkit/truncate"
)

func execute(t *testing.T, ctx context.Context, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := execute(t, context.Background(), "", args...)
	return out, err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "charkit", root.Use)

	for _, name := range []string{"config", "log-level", "json"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "c", root.PersistentFlags().Lookup("config").Shorthand)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"count", "split", "check", "watch", "form", "schema", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestCount(t *testing.T) {
	out, err := run(t, "count", "hello", "world")
	require.NoError(t, err)
	assert.Contains(t, out, "6/140")
	assert.Contains(t, out, "GRAPHEMES")
	assert.Contains(t, out, "ok")
}

func TestCount_JSONFromStdin(t *testing.T) {
	out, _, err := execute(t, context.Background(), "日本語 https://example.com", "count", "--json", "--max", "20")
	require.NoError(t, err)

	var report countReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 30, report.Weight)
	assert.Equal(t, 15, report.Display)
	assert.Equal(t, 20, report.MaxWeight)
	assert.Equal(t, 10, report.Limit)
	assert.Equal(t, 10, report.Over)
	assert.True(t, report.Overflowing)
	assert.Empty(t, report.Tokens)
}

func TestCount_File(t *testing.T) {
	path := writeTemp(t, "draft.txt", "abc")
	out, err := run(t, "count", "--json", "--tokens", "--file", path)
	require.NoError(t, err)

	var report countReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Weight)
	require.Len(t, report.Tokens, 1)
	assert.Equal(t, "abc", report.Tokens[0].Text)

	_, err = run(t, "count", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCount_Tokens(t *testing.T) {
	out, err := run(t, "count", "--tokens", "hi 日本")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "cjk")
	assert.Contains(t, out, `"日本"`)
}

func TestSplit(t *testing.T) {
	out, err := run(t, "split", "--max", "10", "hello world!!")
	require.NoError(t, err)

	assert.Contains(t, out, `kept:     "hello worl"`)
	assert.Contains(t, out, `exceeded: "d!!"`)
	assert.Contains(t, out, "\n"+strings.Repeat(" ", 10)+"^\n")
}

func TestSplit_JSON(t *testing.T) {
	out, err := run(t, "split", "--json", "--max", "4", "日本語")
	require.NoError(t, err)

	var r truncate.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "日本", r.Kept)
	assert.Equal(t, "語", r.Exceeded)
	assert.True(t, r.Overflowing)
}

func TestBoundaryMarker(t *testing.T) {
	assert.Equal(t, "^", boundaryMarker(""))
	assert.Equal(t, "   ^", boundaryMarker("abc"))
	assert.Equal(t, "    ^", boundaryMarker("日本"))
}

func TestCheck_Pass(t *testing.T) {
	values := writeTemp(t, "values.yaml", "title: short\nbody: hello https://example.com\n")

	out, err := run(t, "check", values)
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "[OK] submitted 2 fields")
}

func TestCheck_Blocked(t *testing.T) {
	cfg := writeTemp(t, "charkit.toml", `
[[fields]]
id = "title"
max_weight = 10

[[fields]]
id = "body"
`)
	values := writeTemp(t, "values.json", `{"title": "this title is too long", "body": "fine", "extra": "x"}`)

	out, err := run(t, "--config", cfg, "--json", "check", values)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlocked)
	assert.ErrorIs(t, err, editor.ErrOverflow)
	assert.Contains(t, err.Error(), "Shorten title")

	var report submitReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Submitted)
	require.Len(t, report.Fields, 2)

	title := report.Fields[0]
	assert.Equal(t, "title", title.ID)
	assert.True(t, title.Overflowing)
	assert.Equal(t, "this title", title.Kept)
	assert.Equal(t, " is too long", title.Exceeded)
	assert.Equal(t, editor.DefaultOverflowMessage, title.Message)

	body := report.Fields[1]
	assert.False(t, body.Overflowing)
	assert.Equal(t, 280, body.MaxWeight)
	assert.Empty(t, body.Message)
}

func TestCheck_BadValuesFile(t *testing.T) {
	values := writeTemp(t, "values.yaml", "- not\n- a map\n")
	_, err := run(t, "check", values)
	assert.Error(t, err)

	_, err = run(t, "check")
	assert.Error(t, err)
}

const formPage = `<html><body><form id="form">
<input type="hidden" id="Title" name="Title" value="">
<div id="Title_editor" class="editor" contenteditable="true" data-max-length="10"></div>
<p><span id="Title_counter">0</span>/5 文字</p>
<span class="field-validation-valid" data-valmsg-for="Title"></span>
<template id="Title_template"><span class="exceeded"></span></template>
</form></body></html>`

func TestForm_Blocked(t *testing.T) {
	page := writeTemp(t, "page.html", formPage)
	values := writeTemp(t, "values.yaml", "Title: abcdefghijkl\n")
	result := filepath.Join(t.TempDir(), "result.html")

	out, err := run(t, "form", page, "--values", values, "--out", result)
	require.ErrorIs(t, err, ErrBlocked)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "over")

	html, err := os.ReadFile(result)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<span class="exceeded">kl</span>`)
	assert.Contains(t, string(html), "text-danger")
	assert.Contains(t, string(html), editor.DefaultOverflowMessage)
}

func TestForm_SubmitHTML(t *testing.T) {
	page := writeTemp(t, "page.html", formPage)
	values := writeTemp(t, "values.yaml", "Title: ok\n")

	out, err := run(t, "form", page, "--values", values, "--html")
	require.NoError(t, err)
	assert.Contains(t, out, `value="ok"`)
	assert.Contains(t, out, `<span id="Title_counter" aria-label="1/5 文字">1</span>`)
}

func TestForm_NoFields(t *testing.T) {
	page := writeTemp(t, "page.html", "<html><body><p>nothing</p></body></html>")
	_, err := run(t, "form", page)

	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Contains(t, cliErr.Message, "No counted fields")
}

func TestWatch_PrintsInitialCount(t *testing.T) {
	path := writeTemp(t, "draft.txt", "hello")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := execute(t, ctx, "", "watch", path, "--max", "4")
	require.NoError(t, err)
	assert.Empty(t, out, "overflowing counts go to stderr")

	out, _, err = execute(t, ctx, "", "watch", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+": 3/140")
}

func TestSchema(t *testing.T) {
	out, err := run(t, "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "properties")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "count", "x")
	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Contains(t, cliErr.Suggestion, "debug")
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeTemp(t, "charkit.yaml", "profile: myspace\n")
	_, err := run(t, "--config", cfg, "count", "x")
	assert.Error(t, err)
}

func TestCLIError(t *testing.T) {
	err := WrapError(os.ErrNotExist, "Failed to read x", "Check the path")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "Failed to read x: file does not exist\n\nSuggestion: Check the path", err.Error())

	assert.Equal(t, "plain", NewCLIError("plain", "").Error())
}
