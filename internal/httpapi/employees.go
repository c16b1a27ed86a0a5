package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"facegate/internal/facegate/types"
)

// maxPhotoBytes caps uploaded portrait and capture sizes.  Station
// cameras produce well under 2 MiB per frame; 10 MiB leaves room for
// uncompressed test uploads.
const maxPhotoBytes = 10 << 20

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// formPhoto pulls one uploaded file out of a multipart request.
func formPhoto(r *http.Request, field string) ([]byte, error) {
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		return nil, err
	}
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxPhotoBytes))
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	recs, err := s.employees.List(r.Context())
	if err != nil {
		s.serviceError(w, "list employees", err)
		return
	}

	out := make([]types.Employee, 0, len(recs))
	for _, rec := range recs {
		out = append(out, employeeToWire(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req types.CreateEmployeeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	id, err := s.employees.Create(r.Context(), req)
	if err != nil {
		s.serviceError(w, "create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, types.CreateEmployeeResponse{Status: "success", ID: id})
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_employee_id", "id must be an integer")
		return
	}

	rec, err := s.employees.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, "get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, employeeToWire(rec))
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_employee_id", "id must be an integer")
		return
	}

	var req types.UpdateEmployeeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	if err := s.employees.Update(r.Context(), id, req); err != nil {
		s.serviceError(w, "update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "success"})
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_employee_id", "id must be an integer")
		return
	}

	if err := s.employees.Delete(r.Context(), id); err != nil {
		s.serviceError(w, "delete employee", err)
		return
	}
	writeJSON(w, http.StatusOK, types.StatusResponse{Status: "success"})
}

func (s *Server) handleEnrollPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_employee_id", "id must be an integer")
		return
	}

	// Resolve the employee first so a bad id is a clean 404 instead of a
	// failed store write mid-enrollment.
	if _, err := s.employees.Get(r.Context(), id); err != nil {
		s.serviceError(w, "enroll photo", err)
		return
	}

	photo, err := formPhoto(r, "photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_multipart", "expected multipart form with a photo field")
		return
	}

	path, err := s.enrollment.Enroll(r.Context(), id, photo)
	if err != nil {
		s.serviceError(w, "enroll photo", err)
		return
	}
	writeJSON(w, http.StatusOK, types.EnrollResponse{Status: "success", EmployeeID: id, PhotoPath: path})
}
