package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"facegate/internal/facegate/errorlog"
	"facegate/internal/facegate/types"
)

func (s *Server) handleCheckQR(w http.ResponseWriter, r *http.Request) {
	var req types.CheckQRRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	rec, found, err := s.ledger.CheckPresence(r.Context(), req.EmployeeID)
	if err != nil {
		s.serviceError(w, "check_qr", err)
		return
	}

	resp := types.CheckQRResponse{Exists: found, EmployeeID: req.EmployeeID}
	if found {
		resp.FirstName = &rec.FirstName
		resp.LastName = &rec.LastName
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVerifyFace(w http.ResponseWriter, r *http.Request) {
	photo, err := formPhoto(r, "photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_multipart", "expected multipart form with a photo field")
		return
	}
	employeeID, err := strconv.Atoi(r.FormValue("employee_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_employee_id", "employee_id must be an integer")
		return
	}
	direction := r.FormValue("direction")

	d, err := s.verification.Verify(r.Context(), employeeID, photo)
	if err != nil {
		s.serviceError(w, "face verify", err)
		return
	}

	s.logger.Printf("verify employee=%d direction=%s granted=%v reason=%s", employeeID, direction, d.Granted, d.Reason)

	// Denials are a successful verification with a negative answer, not
	// an HTTP error.
	writeJSON(w, http.StatusOK, types.VerifyFaceResponse{
		AccessGranted: d.Granted,
		Reason:        d.Reason,
		Similarity:    d.Similarity,
	})
}

func (s *Server) handleAccessAck(w http.ResponseWriter, r *http.Request) {
	var req types.AccessAckRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	ts := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := parseDeviceTime(req.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_timestamp", "timestamp must be RFC3339 or YYYY-MM-DDTHH:MM:SS")
			return
		}
		ts = parsed
	}

	if err := s.ledger.Acknowledge(r.Context(), req.EmployeeID, req.Direction, ts); err != nil {
		s.serviceError(w, "access ack", err)
		return
	}
	writeJSON(w, http.StatusOK, types.AccessAckResponse{Status: "success"})
}

func (s *Server) handleListAccessLogs(w http.ResponseWriter, r *http.Request) {
	recs, err := s.ledger.ListLogs(r.Context())
	if err != nil {
		s.serviceError(w, "list access logs", err)
		return
	}

	out := make([]types.AccessLogEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, accessLogToWire(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLogError(w http.ResponseWriter, r *http.Request) {
	var req types.ReportErrorRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if req.ErrorDescription == "" {
		writeError(w, http.StatusBadRequest, "missing_description", "error_description is required")
		return
	}

	entry := errorlog.Entry{
		Time:        time.Now(),
		Employee:    req.Employee,
		Description: req.ErrorDescription,
	}
	if req.Image != nil {
		entry.ImagePath = *req.Image
	}

	if err := s.errorLog.Log(entry); err != nil {
		s.logger.Printf("log_error write failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "could not record error")
		return
	}
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "success"})
}
