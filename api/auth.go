package api

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oceanhire/agency/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	adminRepo     repository.AdminRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ar repository.AdminRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{adminRepo: ar, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

type loginUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// Unknown email and wrong password produce the same response so the
	// caller cannot tell which part failed.
	admin, err := h.adminRepo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("admin lookup failed", slog.Any("err", err))
		writeError(w, "An error occurred during login", http.StatusInternalServerError)
		return
	}
	if admin == nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if h.jwtSecret == "" {
		logger.Error("jwt secret is not configured")
		writeError(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	// Issue JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":    admin.Email,
		"admin_id": admin.ID,
		"exp":      time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger.Error("failed to sign token", slog.Any("err", err))
		writeError(w, "An error occurred during login", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{
		Success: true,
		Token:   tokenStr,
		User:    loginUser{ID: admin.ID, Email: admin.Email},
	}, http.StatusOK)
}
