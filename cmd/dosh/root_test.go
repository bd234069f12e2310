package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/logging"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScriptFromStdin(t *testing.T) {
	out, logs, err := execute(t, "md GAMES\r\ncd GAMES\ncd\n", "--script", "-")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"MS-DOS Clone [Version 0.1.0]",
		"(c) Jan Leigh Munoz and Victor Alexander Ong. Licensed under MIT License.",
		"",
		`C:\> md GAMES`,
		`C:\> cd GAMES`,
		`C:\GAMES> cd`,
		`C:\GAMES`,
		`C:\GAMES> `,
	}, "\n")+"\n", out)

	assert.Contains(t, logs, "command=mkdir")
	assert.Contains(t, logs, "mode=batch")
}

func TestScriptStopsAtExit(t *testing.T) {
	out, _, err := execute(t, "exit\nver\n", "--script", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, `C:\> exit`+"\n"))
	assert.NotContains(t, out, "OSteoporosis")
}

func TestScriptFromFileWithConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dosh.cue"), `
prompt: drive: "A:"
banner: []
log: file: "`+filepath.ToSlash(filepath.Join(dir, "dosh.log"))+`"
`)
	writeFile(t, filepath.Join(dir, "run.bat"), "ver\n")

	out, stderr, err := execute(t, "", "--config", filepath.Join(dir, "dosh.cue"), "--script", filepath.Join(dir, "run.bat"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\n"+`A:\> ver`+"\n"+"OSteoporosis"))
	assert.Empty(t, stderr)

	logData, err := os.ReadFile(filepath.Join(dir, "dosh.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "command=ver")
}

func TestSeedDirImport(t *testing.T) {
	disk := t.TempDir()
	writeFile(t, filepath.Join(disk, "games", "doom.txt"), "rip and tear")

	out, _, err := execute(t, `type \GAMES\DOOM.TXT`+"\n", "--seed-dir", disk, "--script", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "rip and tear\n")
}

func TestSeedDirImportFailureIsFatal(t *testing.T) {
	disk := t.TempDir()
	writeFile(t, filepath.Join(disk, "a-very-long-directory-name-here", "x.txt"), "")

	_, _, err := execute(t, "", "--seed-dir", disk, "--script", "-")
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
	assert.Equal(t, errors.CodeCapacityExceeded, errors.GetCode(err))
}

func TestPrintConfig(t *testing.T) {
	out, _, err := execute(t, "", "--print-config", "--log-level", "debug")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	logSection, ok := decoded["log"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "debug", logSection["level"])
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud", "--print-config")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.True(t, errors.IsFatal(err))
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.cue"), `colors: foreground: "plaid"`)

	_, _, err := execute(t, "", "--config", filepath.Join(dir, "bad.cue"), "--print-config")
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigValidationFailed, errors.GetCode(err))
}

func TestMissingScript(t *testing.T) {
	_, _, err := execute(t, "", "--script", filepath.Join(t.TempDir(), "nope.bat"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeIO, errors.GetCode(err))
}

func TestOpenLoggerDiscardsWithoutFallback(t *testing.T) {
	cfg, _, err := loadConfig(context.Background(), &rootOptions{})
	require.NoError(t, err)

	logger, closeLog, err := openLogger(cfg, nil)
	require.NoError(t, err)
	defer func() { _ = closeLog() }()
	logger.Info(context.Background(), "dropped")
	assert.IsType(t, &logging.Logger{}, logger)
}
