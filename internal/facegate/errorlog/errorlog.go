// Package errorlog is the operator-facing error sink: every diagnosable
// verification denial and every station-reported error lands here.  The
// production sink is a semicolon-delimited CSV file consumed by existing
// operator tooling.
package errorlog

import (
	"time"
)

// Entry is one error-log record.  Employee is a free-form identifier
// string because stations sometimes report errors before an id is known.
type Entry struct {
	Time        time.Time
	Employee    string
	Description string
	ImagePath   string // empty when no photo is attached
}

type Logger interface {
	Log(e Entry) error
}
