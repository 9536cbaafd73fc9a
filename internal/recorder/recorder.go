package recorder

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"triangulator/internal/position"
)

type PoseSource interface {
	GetCurrentPose() (position.Pose, error)
}

type Recorder struct {
	service PoseSource
	file    *os.File
	writer  *csv.Writer
	log     *slog.Logger
}

var header = []string{"x", "y", "heading_deg", "vx", "vy"}

func NewRecorder(service PoseSource, filename string, log *slog.Logger) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	writer.Flush()

	return &Recorder{
		service: service,
		file:    file,
		writer:  writer,
		log:     log,
	}, nil
}

// Start records one pose per tick until ctx is done.
func (r *Recorder) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RecordOnce(); err != nil {
				r.log.Error("failed to write record", "err", err)
			}
		}
	}
}

// RecordOnce triangulates the current pose and appends it as a CSV row.
func (r *Recorder) RecordOnce() error {
	pose, err := r.service.GetCurrentPose()
	if err != nil {
		return err
	}

	record := []string{
		strconv.FormatFloat(pose.Position.X, 'f', 6, 64),
		strconv.FormatFloat(pose.Position.Y, 'f', 6, 64),
		strconv.FormatFloat(pose.Heading, 'f', 4, 64),
		strconv.FormatFloat(pose.UnitVelocity.X, 'f', 6, 64),
		strconv.FormatFloat(pose.UnitVelocity.Y, 'f', 6, 64),
	}
	if err := r.writer.Write(record); err != nil {
		return err
	}
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return err
	}

	r.log.Info("pose recorded", "x", record[0], "y", record[1], "heading", record[2])
	return nil
}

func (r *Recorder) Close() error {
	r.writer.Flush()
	return r.file.Close()
}
