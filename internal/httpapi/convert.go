package httpapi

import (
	"time"

	"facegate/internal/facegate/store"
	"facegate/internal/facegate/types"
)

// wireTimeLayout is the naive datetime format legacy station firmware
// produces and consumes.  No zone suffix; values are server-local.
const wireTimeLayout = "2006-01-02T15:04:05"

func employeeToWire(rec store.EmployeeRecord) types.Employee {
	return types.Employee{
		ID:                rec.ID,
		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		Role:              rec.Role,
		DateOfTermination: rec.DateOfTermination,
		PhotoPath:         rec.PhotoPath,
		AccountNumber:     rec.AccountNumber,
		Login:             rec.Login,
	}
}

func accessLogToWire(rec store.AccessLogRecord) types.AccessLogEntry {
	return types.AccessLogEntry{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Direction:  rec.Direction,
		Timestamp:  rec.Timestamp.Format(wireTimeLayout),
	}
}

func shiftToWire(rec store.ShiftRecord) types.WorkHours {
	out := types.WorkHours{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		TimeStart:  rec.TimeStart.Format(wireTimeLayout),
	}
	if rec.TimeEnd != nil {
		end := rec.TimeEnd.Format(wireTimeLayout)
		out.TimeEnd = &end
	}
	return out
}

// parseDeviceTime accepts RFC3339 or the naive station layout.
func parseDeviceTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse(wireTimeLayout, v)
}
