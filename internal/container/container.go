package container

import (
	"fmt"
	"net/http"
	"os"

	"go-image-checker/internal/config"
	"go-image-checker/internal/factory"
	"go-image-checker/internal/logger"
	"go-image-checker/internal/observer"
	"go-image-checker/internal/repository"
	"go-image-checker/internal/sampler"
	"go-image-checker/internal/service"
	"go-image-checker/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config            *config.Config
	imageRepository   repository.ImageRepository
	comparisonService service.ComparisonService
	publisher         observer.Subject
	handler           http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	sourceType := factory.SourceType(envOrDefault("IMAGE_SOURCE", string(factory.HTTPSource)))
	source, err := factory.NewSourceFactory(cfg.ImageFetchTimeout).CreateSource(sourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to create image source: %w", err)
	}

	imageRepository := repository.NewSourceImageRepository(source)

	publisher := observer.NewEventPublisher()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(observer.NewMetricsObserver())

	comparisonService := service.NewComparisonService(
		imageRepository,
		sampler.New(),
		publisher,
		service.Defaults{
			Strategy:  sampler.Strategy(cfg.DefaultStrategy),
			Points:    cfg.DefaultPoints,
			Threshold: cfg.DefaultThreshold,
		},
	)

	handler := transport.NewHandler(comparisonService, cfg)

	return &Container{
		config:            cfg,
		imageRepository:   imageRepository,
		comparisonService: comparisonService,
		publisher:         publisher,
		handler:           handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
