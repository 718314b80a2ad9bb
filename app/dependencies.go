package app

import (
	"fmt"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/config"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/services/audio"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Processor *audio.Processor
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	processor := audio.NewProcessor(cfg.Storage, logger)
	if err := processor.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logger.Info("all dependencies initialized",
		zap.String("upload_dir", cfg.Storage.UploadDir),
		zap.String("cache_dir", cfg.Storage.CacheDir))

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Processor: processor,
	}, nil
}
