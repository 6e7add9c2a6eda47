package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/patpaw111/web-absn/internal/domain/user"
	"github.com/patpaw111/web-absn/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}

	created, err := h.userService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, created)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GetUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, found)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.userService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, employees)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateUser decode error", "error", err)
		response.BadRequest(w, "invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.userService.UpdateUser(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, updated)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
