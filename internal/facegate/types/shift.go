package types

type ShiftRequest struct {
	EmployeeID int `json:"id_employee"`
}

type ShiftResponse struct {
	Status string `json:"status"`
}

type WorkHours struct {
	ID         int64   `json:"id_record"`
	EmployeeID int     `json:"id_employee"`
	TimeStart  string  `json:"time_start"`
	TimeEnd    *string `json:"time_end,omitempty"` // nil while the shift is open
}
