package types

// ReportErrorRequest lets edge stations push operator-visible errors into
// the central error log.
type ReportErrorRequest struct {
	Employee         string  `json:"employee"`
	ErrorDescription string  `json:"error_description"`
	Image            *string `json:"image,omitempty"`
}
