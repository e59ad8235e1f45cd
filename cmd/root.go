package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/julienpequegnot/blogpost/internal/config"
	"github.com/julienpequegnot/blogpost/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	// fs backs every post operation; tests swap in a memory filesystem.
	fs afero.Fs = afero.NewOsFs()

	cfg = config.Default()
	log = zap.NewNop()

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Manage a file-backed collection of blog posts",
	Long: `Blog creates posts as directories holding content.md and metadata.toml,
edits their tags and keywords, fetches header image candidates from Pexels
and builds static HTML output.

Workflow: new → tag/keyword → header fetch/choose → build`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error or none (default from config)")
}

// setup loads .env, the config file and the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level == "" {
		level = logger.LevelInfo
	}
	l, err := logger.New(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log = l

	cmd.Flags().Visit(func(f *pflag.Flag) {
		log.Debug("flag", zap.String("name", f.Name), zap.String("value", f.Value.String()))
	})
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
