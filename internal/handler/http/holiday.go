package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/patpaw111/web-absn/internal/domain/holiday"
	"github.com/patpaw111/web-absn/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, created)
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.ListHolidays(r.Context())
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, holidays)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
