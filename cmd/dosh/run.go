package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/shell"
	"github.com/janleigh/ms-dos-clone/terminal"
)

func run(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	cfg, loader, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	if opts.printConfig {
		out, err := loader.EncodeYAML(ctx, cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	// The terminal belongs to the shell in interactive mode, so logs only
	// go to stderr in batch mode.
	var fallback io.Writer
	if opts.scriptPath != "" {
		fallback = cmd.ErrOrStderr()
	}
	logger, closeLog, err := openLogger(cfg, fallback)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	store, err := buildStore(ctx, cfg, opts.seedDir, logger)
	if err != nil {
		return err
	}

	sessOpts, err := shell.ConfigOptions(cfg)
	if err != nil {
		return err
	}
	sessOpts = append(sessOpts, shell.WithLogger(logger))

	if opts.scriptPath != "" {
		script, err := readScript(cmd, opts.scriptPath)
		if err != nil {
			return err
		}
		stream := display.NewStream(cmd.OutOrStdout(), display.Width)
		sess := shell.New(store, stream, sessOpts...)
		logger.Info(ctx, "session started", "mode", "batch", "session", sess.ID())
		return runScript(ctx, sess, stream, script)
	}

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	sess := shell.New(store, screen, sessOpts...)
	logger.Info(ctx, "session started", "mode", "interactive", "session", sess.ID())
	return terminal.Run(ctx, sess, screen)
}

func readScript(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeIO, "failed to read script from stdin")
		}
		return data, nil
	}

	fsys, name, err := openHost(path)
	if err != nil {
		return nil, err
	}
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to read script", map[string]interface{}{
			"host_path": path,
		})
	}
	return data, nil
}

// runScript boots sess and executes each line of script until the script
// ends, EXIT is run, or ctx is done. The transcript ends with a newline
// after the last prompt.
func runScript(ctx context.Context, sess *shell.Session, stream *display.Stream, script []byte) error {
	sess.Boot()

	sc := bufio.NewScanner(bytes.NewReader(script))
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		sess.Execute(ctx, strings.TrimRight(sc.Text(), "\r"))
		if sess.Exited() {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to read script")
	}

	if !sess.Exited() {
		stream.WriteChar('\n')
	}
	if err := stream.Flush(); err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to write output")
	}
	return nil
}
