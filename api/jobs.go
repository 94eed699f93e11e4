package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/oceanhire/agency/pkg/models"
	"github.com/oceanhire/agency/pkg/repository"
)

type JobsHandler struct {
	jobRepo repository.JobRepo
}

func NewJobsHandler(jr repository.JobRepo) *JobsHandler {
	return &JobsHandler{jobRepo: jr}
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.JobFilter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}
	// "all" on the public category tabs means no constraint
	if filter.Category == "all" {
		filter.Category = ""
	}

	jobs, err := h.jobRepo.ListJobs(r.Context(), filter)
	if err != nil {
		logger.Error("failed to list jobs", slog.Any("err", err))
		writeError(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, jobs, http.StatusOK)
}

type createJobRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	SalaryRange  string `json:"salary_range"`
	Contact      string `json:"contact"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
}

type jobResponse struct {
	Success bool        `json:"success"`
	Job     *models.Job `json:"job"`
	Message string      `json:"message,omitempty"`
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	req.Location = strings.TrimSpace(req.Location)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Category == "" || req.Location == "" || req.Contact == "" || req.Description == "" {
		writeError(w, "Title, category, location, contact, and description are required", http.StatusBadRequest)
		return
	}

	if req.Status == "" {
		req.Status = models.JobStatusActive
	}
	if !models.ValidJobStatus(req.Status) {
		writeError(w, "Invalid status", http.StatusBadRequest)
		return
	}

	job := &models.Job{
		Title:        req.Title,
		Category:     req.Category,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		Contact:      req.Contact,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
	}
	id, err := h.jobRepo.CreateJob(r.Context(), job)
	if err != nil {
		logger.Error("failed to create job", slog.Any("err", err))
		writeError(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	stored, err := h.jobRepo.GetJob(r.Context(), id)
	if err != nil || stored == nil {
		logger.Error("failed to load created job", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, jobResponse{Success: true, Job: stored, Message: "Job created successfully"}, http.StatusCreated)
}

type updateJobRequest struct {
	ID int64 `json:"id"`
	models.JobPatch
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ID <= 0 {
		writeError(w, "ID is required", http.StatusBadRequest)
		return
	}
	if req.Status != nil && !models.ValidJobStatus(*req.Status) {
		writeError(w, "Invalid status", http.StatusBadRequest)
		return
	}

	job, err := h.jobRepo.UpdateJob(r.Context(), req.ID, &req.JobPatch)
	if err != nil {
		logger.Error("failed to update job", slog.Int64("id", req.ID), slog.Any("err", err))
		writeError(w, "Failed to update job", http.StatusInternalServerError)
		return
	}
	if job == nil {
		writeError(w, "Job not found", http.StatusNotFound)
		return
	}

	writeJSON(w, jobResponse{Success: true, Job: job}, http.StatusOK)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	found, err := h.jobRepo.DeleteJob(r.Context(), id)
	if err != nil {
		logger.Error("failed to delete job", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}
	if !found {
		writeError(w, "Job not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Job deleted successfully"}, http.StatusOK)
}
