// Package logger periodically snapshots the device registry to a CSV file.
package logger

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"al1905d/datamodel"
)

// CSVLogger writes periodic snapshots of the device registry and neighbor
// link table to a CSV file.
type CSVLogger struct {
	mu       sync.Mutex
	file     *os.File
	writer   *csv.Writer
	filepath string
}

// NewCSVLogger creates a new CSV logger with a timestamped filename. If
// directory is empty, the file is created in the current directory.
func NewCSVLogger(directory string) (*CSVLogger, error) {
	timestamp := time.Now().Format("2006-01-02-150405")
	filename := fmt.Sprintf("al1905d-%s.csv", timestamp)

	if directory != "" {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		filename = directory + string(os.PathSeparator) + filename
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}

	writer := csv.NewWriter(file)

	logger := &CSVLogger{
		file:     file,
		writer:   writer,
		filepath: filename,
	}

	header := []string{
		"Timestamp",
		"Kind",
		"AL MAC / Local Interface",
		"Neighbor AL MAC",
		"Neighbor Interface MAC",
		"Bridged",
		"Slot Count",
		"Metric Count",
		"Needs Update",
	}
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	writer.Flush()

	return logger, nil
}

// LogSnapshot writes one row per device and one row per neighbor link.
func (l *CSVLogger) LogSnapshot(devices []datamodel.DeviceSnapshot, links []datamodel.LinkSnapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == nil {
		return fmt.Errorf("logger is closed")
	}

	now := time.Now().Format(time.RFC3339)

	for _, d := range devices {
		record := []string{
			now,
			"device",
			d.ALMAC.String(),
			"",
			"",
			"",
			strconv.Itoa(d.SlotCount),
			strconv.Itoa(d.MetricCount),
			strconv.FormatBool(d.NeedsUpdate),
		}
		if err := l.writer.Write(record); err != nil {
			return fmt.Errorf("writing device record: %w", err)
		}
	}

	for _, link := range links {
		record := []string{
			now,
			"link",
			link.LocalInterfaceName,
			link.NeighborALMAC.String(),
			link.NeighborInterfaceMAC.String(),
			strconv.FormatBool(link.Bridged),
			"",
			"",
			"",
		}
		if err := l.writer.Write(record); err != nil {
			return fmt.Errorf("writing link record: %w", err)
		}
	}

	l.writer.Flush()
	return l.writer.Error()
}

// Run writes a snapshot every interval until ctx is cancelled.
func (l *CSVLogger) Run(ctx context.Context, store *datamodel.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			devices, links := store.Snapshot()
			l.LogSnapshot(devices, links)
		}
	}
}

// Close flushes and closes the CSV file.
func (l *CSVLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer != nil {
		l.writer.Flush()
		l.writer = nil
	}

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}

	return nil
}

// Filepath returns the path to the log file.
func (l *CSVLogger) Filepath() string {
	return l.filepath
}
