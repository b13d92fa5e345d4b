package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, dir, name, tool string) string {
	t.Helper()
	l := sarif.NewLog()
	l.Runs = append(l.Runs, &sarif.Run{Tool: &sarif.Tool{Driver: &sarif.ToolComponent{Name: tool}}})
	var buf bytes.Buffer
	require.NoError(t, sarif.WriteLog(&buf, l))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0644))
	return p
}

func TestLoadLogs(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.sarif", "a")
	stdin, err := os.ReadFile(writeLog(t, dir, "b.sarif", "b"))
	require.NoError(t, err)

	logs, err := loadLogs(context.Background(), bytes.NewReader(stdin), []string{a, "-"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "a", logs[0].Runs[0].Tool.Driver.Name)
	assert.Equal(t, "b", logs[1].Runs[0].Tool.Driver.Name)

	_, err = loadLogs(context.Background(), bytes.NewReader(stdin), []string{"-", a, "-"})
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, err = loadLogs(context.Background(), nil, []string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}
