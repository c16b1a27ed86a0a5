package types

type CheckQRRequest struct {
	EmployeeID int    `json:"employee_id"`
	Direction  string `json:"direction,omitempty"`
}

type CheckQRResponse struct {
	Exists     bool    `json:"exists"`
	EmployeeID int     `json:"employee_id"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
}

type AccessAckRequest struct {
	EmployeeID int    `json:"employee_id"`
	Direction  string `json:"direction"`
	Timestamp  string `json:"timestamp"` // device clock, RFC3339 or naive "2006-01-02T15:04:05"
}

type AccessAckResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type AccessLogEntry struct {
	ID         int64  `json:"id_log"`
	EmployeeID int    `json:"id_employee"`
	Direction  string `json:"direction"`
	Timestamp  string `json:"timestamp"`
}
