package main

import (
	"github.com/spf13/cobra"

	"github.com/janleigh/ms-dos-clone/shell"
)

// rootOptions holds the command-line flags. Flags override the
// configuration file.
type rootOptions struct {
	configPath  string
	logLevel    string
	logFile     string
	seedDir     string
	scriptPath  string
	printConfig bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dosh",
		Short: "An MS-DOS style shell over an in-memory filesystem",
		Long: `dosh boots a small MS-DOS style shell. The filesystem lives in memory and
starts from a fixed seed, optionally extended with a host directory tree.

Without --script the shell takes over the terminal. With --script it reads
commands from a file (or "-" for stdin), one per line, and writes the
session transcript to stdout.

Examples:
  dosh                          # interactive session
  dosh --seed-dir ./disk        # import ./disk into C:\
  dosh --script build.bat       # run commands from a file
  dosh --print-config           # show the effective configuration`,
		Version:       shell.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.SetVersionTemplate("dosh version {{.Version}}\n")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a CUE configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (overrides config)")
	cmd.Flags().StringVar(&opts.seedDir, "seed-dir", "", "Host directory to import into the root at boot (overrides config)")
	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "", `Run commands from this file ("-" for stdin) instead of the terminal`)
	cmd.Flags().BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration as YAML and exit")

	return cmd
}
