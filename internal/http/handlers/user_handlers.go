package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storekit/catalog-api/internal/repo"
)

// GetUsersHandler godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserListResult
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll(r.Context())
	if err != nil {
		WriteInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UserListResult{Message: "users retrieved", Users: users})
}

// GetUserByIDHandler godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResult
// @Failure 404 {object} ErrorResponse
// @Router /user/{id} [get]
func GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid user ID")
		return
	}

	user, err := userRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, CodeNotFound, "user not found")
			return
		}
		WriteInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UserResult{Message: "user retrieved", User: user})
}
