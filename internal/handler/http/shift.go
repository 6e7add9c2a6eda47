package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// CreateShift implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var createReq shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateShift(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, created)
}

// ListShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, shifts)
}

// UpdateShift implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var updateReq shift.UpdateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.shiftService.UpdateShift(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, updated)
}

// DeleteShift implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// CreateAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var createReq shift.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateAssignment(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, created)
}

// ListAssignments implements ShiftHandler.
func (h *ShiftHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.shiftService.ListAssignments(r.Context())
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, assignments)
}

// DeleteAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
