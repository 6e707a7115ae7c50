package handlers

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/storekit/catalog-api/internal/auth"
	"github.com/storekit/catalog-api/internal/http/throttle"
	"github.com/storekit/catalog-api/internal/models"
	"github.com/storekit/catalog-api/internal/repo"
)

// SignupHandler godoc
// @Summary Register new user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid input")
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	if msg := validateCredentials(creds); msg != "" {
		WriteError(w, http.StatusBadRequest, CodeValidationError, msg)
		return
	}

	hashed, err := auth.HashPassword(creds.Password)
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	user, err := userRepo.Create(r.Context(), models.User{
		Username:     creds.Username,
		PasswordHash: hashed,
		Email:        creds.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			WriteError(w, http.StatusConflict, CodeDuplicateUsername, "username already taken")
			return
		}
		WriteInternalError(w, err)
		return
	}

	token, err := tokenService.IssueToken(user)
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResult{
		Message: "user registered",
		Token:   token,
		User:    user,
	})
}

// LoginHandler godoc
// @Summary Authenticate user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} AuthResult
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid input")
		return
	}

	ip := clientIP(r)
	if throttle.Blocked(creds.Username, ip) {
		WriteError(w, http.StatusTooManyRequests, CodeTooManyAttempts, "too many failed attempts, try again later")
		return
	}

	// Absent user and wrong password answer identically so usernames
	// cannot be enumerated.
	user, err := userRepo.GetByUsername(r.Context(), creds.Username)
	if err != nil || !auth.CheckPassword(creds.Password, user.PasswordHash) {
		if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
			WriteInternalError(w, err)
			return
		}
		throttle.RecordFailure(creds.Username, ip)
		WriteError(w, http.StatusUnauthorized, CodeInvalidCredentials, "invalid username or password")
		return
	}

	token, err := tokenService.IssueToken(user)
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	throttle.ClearFailures(creds.Username, ip)
	writeJSON(w, http.StatusOK, AuthResult{
		Message: "login successful",
		Token:   token,
		User:    user,
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
