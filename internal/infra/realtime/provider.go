package realtime

import (
	"context"
	"log/slog"

	"pushcart/config"
	"pushcart/internal/domain/constants"
	"pushcart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// ProvideHub creates the in-process hub and ties its shutdown to the app
// lifecycle.
func ProvideHub(params HubParams) *Hub {
	hub := NewHub(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing realtime hub")

			return hub.Close()
		},
	})

	return hub
}

// NewLocationFeed exposes the hub through the domain feed interface.
func NewLocationFeed(hub *Hub) service.LocationFeed {
	return hub
}

// PublisherParams holds dependencies for the LocationEventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
}

// NewLocationEventPublisher selects the publisher implementation from config.
// Single-instance deployments publish straight into the in-process hub;
// multi-instance ones go through Pub/Sub and the worker re-broadcasts
// deliveries into each instance's hub.
func NewLocationEventPublisher(params PublisherParams) (service.LocationEventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderInProcess {
		logger.Info("Using in-process hub for location events")

		return params.Hub, nil
	}

	var publisher service.LocationEventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for location events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for location events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing LocationEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the realtime FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(ProvideHub),
	fx.Provide(NewLocationFeed),
	fx.Provide(NewLocationEventPublisher),
)
