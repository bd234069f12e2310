package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/janleigh/ms-dos-clone/config"
	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/hostfs"
	"github.com/janleigh/ms-dos-clone/logging"
	"github.com/janleigh/ms-dos-clone/namespace"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// openHost splits path into a host filesystem rooted at its directory and
// the name within it.
func openHost(path string) (*hostfs.FS, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", errors.WrapWithContext(err, errors.CodeIO, "failed to resolve path", map[string]interface{}{
			"host_path": path,
		})
	}
	return hostfs.NewLocal(filepath.Dir(abs)), filepath.Base(abs), nil
}

// loadConfig loads the configuration file, or the schema defaults when
// none is given, and applies flag overrides.
func loadConfig(ctx context.Context, opts *rootOptions) (*config.Config, *config.Loader, error) {
	var (
		loader *config.Loader
		cfg    *config.Config
		err    error
	)

	if opts.configPath == "" {
		if loader, err = config.NewLoader(nil); err != nil {
			return nil, nil, err
		}
		cfg, err = loader.Default(ctx)
	} else {
		fsys, name, herr := openHost(opts.configPath)
		if herr != nil {
			return nil, nil, herr
		}
		if loader, err = config.NewLoader(fsys); err != nil {
			return nil, nil, err
		}
		cfg, err = loader.Load(ctx, name)
	}
	if err != nil {
		return nil, nil, err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}

	// Reject a bad --log-level before anything is started.
	if _, err := cfg.LogConfig(); err != nil {
		return nil, nil, errors.WithClassification(err, errors.ClassificationFatal)
	}
	return cfg, loader, nil
}

// openLogger returns the session logger. Logs go to the configured file
// when there is one, otherwise to fallback; a nil fallback discards them.
// The returned close function is never nil.
func openLogger(cfg *config.Config, fallback io.Writer) (*logging.Logger, func() error, error) {
	logCfg, err := cfg.LogConfig()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.WrapWithContext(err, errors.CodeIO, "failed to open log file", map[string]interface{}{
				"host_path": cfg.Log.File,
			})
		}
		return logging.NewLogger(logCfg, f), f.Close, nil
	}

	noop := func() error { return nil }
	if fallback == nil {
		return logging.NewNopLogger(), noop, nil
	}
	return logging.NewLogger(logCfg, fallback), noop, nil
}

// buildStore seeds a store from cfg and imports a host directory into the
// root: seedDir when set, otherwise the configured one.
func buildStore(ctx context.Context, cfg *config.Config, seedDir string, logger *logging.Logger) (*namespace.Store, error) {
	store, err := namespace.NewSeeded(cfg.NamespaceSeed())
	if err != nil {
		return nil, err
	}

	dir := cfg.HostDir()
	if seedDir != "" {
		dir = seedDir
	}
	if dir == "" {
		return store, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to resolve seed directory", map[string]interface{}{
			"host_path": dir,
		})
	}

	n, err := store.Import(hostfs.NewLocal(abs), ".", vpath.Root)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "imported host directory", "host_path", abs, "entries", n)
	return store, nil
}
