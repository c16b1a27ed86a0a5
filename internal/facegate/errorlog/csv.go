package errorlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// CSVLogger appends entries to a semicolon-delimited CSV file:
//
//	date;time;employee;description;imagePath
//
// The column layout is load-bearing; operator tooling parses it.
type CSVLogger struct {
	mu   sync.Mutex
	path string
}

func NewCSVLogger(path string) *CSVLogger {
	if path == "" {
		path = "./error_logs.csv"
	}
	return &CSVLogger{path: path}
}

func (l *CSVLogger) Log(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	if err := w.Write([]string{
		ts.Format("2006-01-02"),
		ts.Format("15:04:05"),
		e.Employee,
		e.Description,
		e.ImagePath,
	}); err != nil {
		return fmt.Errorf("write error log record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush error log: %w", err)
	}
	return nil
}
