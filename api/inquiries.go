package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/oceanhire/agency/pkg/models"
	"github.com/oceanhire/agency/pkg/repository"
	"github.com/qri-io/jsonschema"
)

// inquirySchema validates the public submission payload: required fields plus
// a syntactic email check.
var inquirySchema = mustSchema([]byte(`{
	"type": "object",
	"required": ["fullName", "email", "message"],
	"properties": {
		"fullName": {"type": "string", "minLength": 1},
		"email": {"type": "string", "pattern": "^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$"},
		"phone": {"type": ["string", "null"]},
		"jobId": {"type": ["integer", "null"]},
		"message": {"type": "string", "minLength": 1}
	}
}`))

func mustSchema(b []byte) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		panic("invalid schema json: " + err.Error())
	}
	return rs
}

type InquiriesHandler struct {
	inquiryRepo repository.InquiryRepo
}

func NewInquiriesHandler(ir repository.InquiryRepo) *InquiriesHandler {
	return &InquiriesHandler{inquiryRepo: ir}
}

type createInquiryRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	JobID    *int64 `json:"jobId"`
	Message  string `json:"message"`
}

type inquiryResponse struct {
	Success bool            `json:"success"`
	Inquiry *models.Inquiry `json:"inquiry"`
	Message string          `json:"message,omitempty"`
}

func (h *InquiriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	errs, err := inquirySchema.ValidateBytes(r.Context(), body)
	if err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if len(errs) > 0 {
		msg := "Full name, email, and message are required"
		if strings.Contains(errs[0].PropertyPath, "email") {
			msg = "Invalid email format"
		}
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	var req createInquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	// status is fixed at "new" on public submissions
	inq := &models.Inquiry{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		JobID:    req.JobID,
		Message:  req.Message,
		Status:   models.InquiryStatusNew,
	}
	id, err := h.inquiryRepo.CreateInquiry(r.Context(), inq)
	if err != nil {
		logger.Error("failed to create inquiry", slog.Any("err", err))
		writeError(w, "Failed to submit inquiry", http.StatusInternalServerError)
		return
	}

	stored, err := h.inquiryRepo.GetInquiry(r.Context(), id)
	if err != nil || stored == nil {
		logger.Error("failed to load created inquiry", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to submit inquiry", http.StatusInternalServerError)
		return
	}

	writeJSON(w, inquiryResponse{Success: true, Inquiry: stored, Message: "Inquiry submitted successfully"}, http.StatusCreated)
}

func (h *InquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "all" {
		status = ""
	}

	inquiries, err := h.inquiryRepo.ListInquiries(r.Context(), status)
	if err != nil {
		logger.Error("failed to list inquiries", slog.Any("err", err))
		writeError(w, "Failed to fetch inquiries", http.StatusInternalServerError)
		return
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}

	writeJSON(w, inquiries, http.StatusOK)
}

type updateInquiryRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (h *InquiriesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID <= 0 || req.Status == "" {
		writeError(w, "ID and status are required", http.StatusBadRequest)
		return
	}
	if !models.ValidInquiryStatus(req.Status) {
		writeError(w, "Invalid status", http.StatusBadRequest)
		return
	}

	inq, err := h.inquiryRepo.UpdateInquiryStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		logger.Error("failed to update inquiry", slog.Int64("id", req.ID), slog.Any("err", err))
		writeError(w, "Failed to update inquiry", http.StatusInternalServerError)
		return
	}
	if inq == nil {
		writeError(w, "Inquiry not found", http.StatusNotFound)
		return
	}

	writeJSON(w, inquiryResponse{Success: true, Inquiry: inq}, http.StatusOK)
}

func (h *InquiriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeError(w, "ID is required", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "ID is required", http.StatusBadRequest)
		return
	}

	found, err := h.inquiryRepo.DeleteInquiry(r.Context(), id)
	if err != nil {
		logger.Error("failed to delete inquiry", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete inquiry", http.StatusInternalServerError)
		return
	}
	if !found {
		writeError(w, "Inquiry not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Inquiry deleted successfully"}, http.StatusOK)
}
