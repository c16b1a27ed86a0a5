package httpapi

import (
	"encoding/json"
	"net/http"

	"facegate/internal/facegate/types"
)

func (s *Server) handleListHours(w http.ResponseWriter, r *http.Request) {
	recs, err := s.shifts.ListShifts(r.Context())
	if err != nil {
		s.serviceError(w, "list hours", err)
		return
	}

	out := make([]types.WorkHours, 0, len(recs))
	for _, rec := range recs {
		out = append(out, shiftToWire(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStartShift(w http.ResponseWriter, r *http.Request) {
	var req types.ShiftRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	if _, err := s.shifts.StartShift(r.Context(), req.EmployeeID); err != nil {
		s.serviceError(w, "start shift", err)
		return
	}
	writeJSON(w, http.StatusOK, types.ShiftResponse{Status: "success"})
}

func (s *Server) handleEndShift(w http.ResponseWriter, r *http.Request) {
	var req types.ShiftRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	if err := s.shifts.EndShift(r.Context(), req.EmployeeID); err != nil {
		s.serviceError(w, "end shift", err)
		return
	}
	writeJSON(w, http.StatusOK, types.ShiftResponse{Status: "success"})
}
