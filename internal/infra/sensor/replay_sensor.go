package sensor

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrEmptyTrack is returned when a track file holds no usable fixes.
var ErrEmptyTrack = errors.New("track contains no positions")

type replaySensor struct {
	track    []entity.GeoPoint
	interval time.Duration
}

// NewReplaySensor returns a sensor that walks a recorded track, one fix per
// interval, looping back to the start when the track runs out. Tracks are CSV
// files with one "lat,lng" pair per line; lines that fail to parse are
// skipped.
func NewReplaySensor(trackPath string, interval time.Duration) (service.LocationSensor, error) {
	track, err := loadTrack(trackPath)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	return &replaySensor{track: track, interval: interval}, nil
}

func (s *replaySensor) Current(_ context.Context, _ time.Duration) (*service.PositionSample, error) {
	return s.sample(0), nil
}

func (s *replaySensor) Watch(ctx context.Context, onSample func(*service.PositionSample), _ func(error)) (service.WatchHandle, error) {
	handle := newWatchHandle()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		onSample(s.sample(0))
		next := 1

		for {
			select {
			case <-handle.done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				onSample(s.sample(next % len(s.track)))
				next++
			}
		}
	}()

	return handle, nil
}

func (s *replaySensor) sample(idx int) *service.PositionSample {
	return &service.PositionSample{
		Position:   s.track[idx],
		ObservedAt: time.Now(),
	}
}

// loadTrack reads a lat,lng CSV track from disk.
func loadTrack(path string) ([]entity.GeoPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open track file")
	}
	defer func() { _ = f.Close() }()

	return parseTrack(f)
}

func parseTrack(r io.Reader) ([]entity.GeoPoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var track []entity.GeoPoint
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read track file")
		}
		if len(record) < 2 {
			continue
		}

		lat, latErr := strconv.ParseFloat(record[0], 64)
		lng, lngErr := strconv.ParseFloat(record[1], 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		point := entity.GeoPoint{Latitude: lat, Longitude: lng}
		if !point.Valid() {
			continue
		}

		track = append(track, point)
	}

	if len(track) == 0 {
		return nil, errors.Wrap(ErrEmptyTrack, "failed to load track")
	}

	return track, nil
}
