package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xqrs/tview/config"
	"github.com/xqrs/tview/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	human      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vlist",
		Short:         "vlist exercises virtually scrolled lists in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the configuration")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Write human readable logs")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// settings is the resolved configuration of one command run.
type settings struct {
	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer
}

func (s *settings) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// loadSettings reads the configuration file, if any, applies flag overrides,
// and builds the logger. Without a log file, logs go to fallback.
func loadSettings(cmd *cobra.Command, flags *rootFlags, fallback io.Writer) (*settings, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if cmd.Flags().Changed("human") {
		cfg.Log.HumanReadable = flags.human
	}

	s := &settings{cfg: cfg}
	writer := fallback
	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer, s.closer = file, file
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        writer,
	})
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	s.log = log
	return s, nil
}
