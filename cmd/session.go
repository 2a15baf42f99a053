package cmd

import (
	"fmt"

	"toolkit/core/config"
	"toolkit/core/logger"
	"toolkit/core/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session holds the configuration and logger of one command invocation.
type session struct {
	cfg *config.Config
	log *zap.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &session{cfg: cfg, log: logger.WithCommand(logg, cmd)}, nil
}

// settings opens the settings store named by the configuration.
func (s *session) settings() (*settings.Store, error) {
	store, err := settings.Load(s.cfg.Settings.Dir)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Settings loaded", zap.String("dir", s.cfg.Settings.Dir))
	return store, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}
