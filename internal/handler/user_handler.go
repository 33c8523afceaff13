package handler

import (
	"encoding/json"
	"net/http"

	"tokoonline/internal/model"
	"tokoonline/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// loginResponse carries the issued session token.
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register handles POST /api/register requests.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body", h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /api/login requests.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body", h.logger)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// GetAll handles GET /api/pengguna requests.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// GetByID handles GET /api/pengguna/{id} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "User ID must be a number", h.logger)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update handles PUT /api/pengguna/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "User ID must be a number", h.logger)
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body", h.logger)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "User updated successfully"})
}

// Delete handles DELETE /api/pengguna/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "User ID must be a number", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
