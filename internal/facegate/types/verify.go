package types

// VerifyFaceResponse is the wire shape of a verification decision.
// Similarity is only present when an embedding comparison actually ran.
type VerifyFaceResponse struct {
	AccessGranted bool     `json:"access_granted"`
	Reason        string   `json:"reason"`
	Similarity    *float32 `json:"similarity,omitempty"`
}

type EnrollResponse struct {
	Status     string `json:"status"`
	EmployeeID int    `json:"id_person"`
	PhotoPath  string `json:"photo_path"`
}
