package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAttendance decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}

	created, err := h.attendanceService.CreateAttendance(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, created)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.attendanceService.GetAttendance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GetAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, found)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.AttendanceFilter
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	events, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, events)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAttendance decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.attendanceService.UpdateAttendance(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, updated)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteAttendance(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
