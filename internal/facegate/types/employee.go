package types

type Employee struct {
	ID                int     `json:"id_person"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Role              string  `json:"role"`
	DateOfTermination *string `json:"date_of_termination,omitempty"` // YYYY-MM-DD
	PhotoPath         *string `json:"photo_path,omitempty"`
	AccountNumber     *string `json:"account_number,omitempty"`
	Login             *string `json:"login,omitempty"`
}

type CreateEmployeeRequest struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Role              string  `json:"role"`
	Login             *string `json:"login,omitempty"`
	DateOfTermination *string `json:"date_of_termination,omitempty"`
}

// StatusResponse is the generic ack body for mutations that return no
// payload.
type StatusResponse struct {
	Status string `json:"status"`
}

type CreateEmployeeResponse struct {
	Status string `json:"status"`
	ID     int    `json:"id_person"`
}

// UpdateEmployeeRequest carries a partial update: nil fields are left
// untouched, never nulled.
type UpdateEmployeeRequest struct {
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Role              *string `json:"role,omitempty"`
	Login             *string `json:"login,omitempty"`
	DateOfTermination *string `json:"date_of_termination,omitempty"`
	AccountNumber     *string `json:"account_number,omitempty"`
	Password          *string `json:"password,omitempty"`
}
