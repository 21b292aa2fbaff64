// Package publisher implements the vendor-side location sharing loop: it
// turns "sharing on/off" into a bounded-rate stream of upserts against the
// shared vendor-locations store.
package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/service"
	"pushcart/internal/errors"

	"github.com/google/uuid"
)

// Sampling and publishing are decoupled: the sensor writes into a single-slot
// mailbox at whatever rate it produces fixes, and the publish ticker reads the
// latest value at a fixed interval. Only the last sample matters.
const defaultPublishInterval = 7 * time.Second

var (
	// ErrAlreadySharing is returned when Start is called on a running publisher.
	ErrAlreadySharing = errors.New("location sharing already started")
)

// LocationStore is the subset of the location store the publisher writes to.
type LocationStore interface {
	// UpsertLocation inserts or replaces the vendor's location row.
	UpsertLocation(ctx context.Context, location *entity.VendorLocation) error

	// MarkInactive clears the vendor's is_active flag.
	MarkInactive(ctx context.Context, vendorID uuid.UUID) error
}

// Config holds the publisher's identity and pacing.
type Config struct {
	VendorID        uuid.UUID
	VendorName      string
	PublishInterval time.Duration // Zero means the 7s default.
}

type state int

const (
	stateStopped state = iota
	stateSharing
)

// Publisher runs the sharing loop for one vendor. All methods are safe for
// concurrent use; the zero value is not usable, construct with New.
type Publisher struct {
	cfg    Config
	sensor service.LocationSensor
	store  LocationStore
	logger *slog.Logger

	mu     sync.Mutex
	st     state
	latest *service.PositionSample // single-slot mailbox, last value wins
	watch  service.WatchHandle
	done   chan struct{}
	wg     sync.WaitGroup
}

// New creates a publisher in the Stopped state.
func New(cfg Config, sensor service.LocationSensor, store LocationStore, logger *slog.Logger) *Publisher {
	if cfg.PublishInterval <= 0 {
		cfg.PublishInterval = defaultPublishInterval
	}

	return &Publisher{
		cfg:    cfg,
		sensor: sensor,
		store:  store,
		logger: logger,
	}
}

// Start subscribes to continuous sensor updates and begins the publish
// ticker. If the sensor refuses the watch (permission denied, unavailable)
// the error is returned and the publisher stays Stopped; this is a reported
// condition for the caller to surface, not a crash.
func (p *Publisher) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.st == stateSharing {
		return ErrAlreadySharing
	}

	watch, err := p.sensor.Watch(ctx, p.onSample, p.onSensorError)
	if err != nil {
		return errors.Wrap(err, "failed to start position watch")
	}

	p.watch = watch
	p.done = make(chan struct{})
	p.st = stateSharing
	p.wg.Add(1)
	go p.loop(ctx, p.done)

	p.logger.Info("location sharing started",
		slog.String("vendor_id", p.cfg.VendorID.String()),
		slog.Duration("publish_interval", p.cfg.PublishInterval),
	)

	return nil
}

// Stop cancels the publish ticker, then the sensor watch, then issues one
// best-effort write clearing is_active. The ordering matters: the ticker
// loop is fully drained before the final write, so a just-fired tick can
// never republish is_active=true afterwards. Stop on a stopped publisher is
// a no-op.
func (p *Publisher) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.st != stateSharing {
		p.mu.Unlock()

		return nil
	}
	p.st = stateStopped
	close(p.done)
	watch := p.watch
	p.watch = nil
	p.latest = nil
	p.mu.Unlock()

	p.wg.Wait()
	watch.Stop()

	if err := p.store.MarkInactive(ctx, p.cfg.VendorID); err != nil {
		// Local resources are already released; surface the failure
		// without retrying.
		p.logger.Warn("failed to mark vendor offline",
			slog.String("vendor_id", p.cfg.VendorID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to mark vendor offline")
	}

	p.logger.Info("location sharing stopped", slog.String("vendor_id", p.cfg.VendorID.String()))

	return nil
}

// Sharing reports whether the publisher is currently in the Sharing state.
func (p *Publisher) Sharing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.st == stateSharing
}

// onSample overwrites the mailbox with the newest fix.
func (p *Publisher) onSample(sample *service.PositionSample) {
	p.mu.Lock()
	p.latest = sample
	p.mu.Unlock()
}

func (p *Publisher) onSensorError(err error) {
	p.logger.Warn("position watch error", slog.Any("error", err))
}

func (p *Publisher) loop(ctx context.Context, done <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.PublishInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publishTick(ctx)
		}
	}
}

// publishTick pushes the latest sampled position to the store. A tick before
// the first fix arrives is skipped entirely; a transient write failure is
// logged and dropped, since the next tick retries with fresher data anyway.
func (p *Publisher) publishTick(ctx context.Context) {
	p.mu.Lock()
	if p.st != stateSharing || p.latest == nil {
		p.mu.Unlock()

		return
	}
	sample := p.latest
	p.mu.Unlock()

	location := &entity.VendorLocation{
		VendorID:    p.cfg.VendorID,
		VendorName:  p.cfg.VendorName,
		Position:    sample.Position,
		IsActive:    true,
		LastUpdated: time.Now(),
	}

	if err := p.store.UpsertLocation(ctx, location); err != nil {
		p.logger.Warn("failed to publish location",
			slog.String("vendor_id", p.cfg.VendorID.String()),
			slog.Any("error", err),
		)
	}
}
