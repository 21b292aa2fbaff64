// The beacon agent runs on the vendor's device. It reads positions from a
// sensor and publishes them to the PushCart API on a fixed cadence, marking
// the vendor offline when stopped.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pushcart/config"
	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/service"
	"pushcart/internal/infra/apiclient"
	logs "pushcart/internal/infra/log"
	"pushcart/internal/infra/sensor"
	"pushcart/internal/publisher"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("beacon failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Beacon == nil {
		return errors.New("beacon config section is required")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}

	vendorID, err := uuid.Parse(cfg.Beacon.VendorID)
	if err != nil {
		return errors.Wrap(err, "invalid vendor id")
	}

	positionSensor, err := buildSensor(cfg)
	if err != nil {
		return err
	}

	store, err := apiclient.New(cfg.Beacon.APIBaseURL, cfg.Beacon.AccessToken)
	if err != nil {
		return errors.Wrap(err, "failed to build api client")
	}

	var interval time.Duration
	if cfg.Publisher != nil {
		interval = cfg.Publisher.Interval
	}

	pub := publisher.New(publisher.Config{
		VendorID:        vendorID,
		VendorName:      cfg.Beacon.VendorName,
		PublishInterval: interval,
	}, positionSensor, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := pub.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start location sharing")
	}
	logger.Info("location sharing started",
		slog.String("vendor_id", vendorID.String()),
		slog.String("vendor_name", cfg.Beacon.VendorName),
	)

	<-ctx.Done()
	logger.Info("shutting down, marking vendor offline")

	// The signal context is already cancelled; give the offline write its
	// own deadline.
	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pub.Stop(stopCtx); err != nil {
		return errors.Wrap(err, "failed to stop cleanly")
	}

	return nil
}

// buildSensor picks the position source from config.
func buildSensor(cfg *config.Config) (service.LocationSensor, error) {
	sensorCfg := cfg.Beacon.Sensor

	var interval time.Duration
	if cfg.Publisher != nil {
		interval = cfg.Publisher.Interval
	}

	switch sensorCfg.Kind {
	case "replay":
		s, err := sensor.NewReplaySensor(sensorCfg.TrackPath, interval)

		return s, errors.Wrap(err, "failed to build replay sensor")
	case "static", "":
		s, err := sensor.NewStaticSensor(entity.GeoPoint{
			Latitude:  sensorCfg.Latitude,
			Longitude: sensorCfg.Longitude,
		}, interval)

		return s, errors.Wrap(err, "failed to build static sensor")
	default:
		return nil, errors.Errorf("unknown sensor kind: %s", sensorCfg.Kind)
	}
}
