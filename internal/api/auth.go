package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/auth"
	"github.com/parthbuilds/shubhaKuteer2/internal/models"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

// splitName projects a stored full name into first and last. Only the first
// two space-separated tokens survive; anything after the second is dropped,
// matching what the storefront displays.
func splitName(name string) (first, last string) {
	parts := strings.Split(name, " ")
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

func userProjection(u *models.User) router.H {
	first, last := splitName(u.Name)
	return router.H{
		"id":           u.ID,
		"first_name":   first,
		"last_name":    last,
		"email":        u.Email,
		"phone_number": u.Phone,
		"dob":          "",
	}
}

// Register creates a customer account.
func (h *Handler) Register(c router.Ctx) {
	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&payload); err != nil ||
		payload.Name == "" || payload.Email == "" || payload.Phone == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, router.H{"message": "Name, email, phone, and password are required"})
		return
	}

	ctx := c.Context()
	if _, err := h.store.GetUserByEmail(ctx, payload.Email); err == nil {
		c.JSON(http.StatusConflict, router.H{"message": "Email already registered"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.serverError(c, "register email lookup", err)
		return
	}
	if _, err := h.store.GetUserByPhone(ctx, payload.Phone); err == nil {
		c.JSON(http.StatusConflict, router.H{"message": "Phone number already registered"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.serverError(c, "register phone lookup", err)
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		h.serverError(c, "password hash", err)
		return
	}
	id, err := h.store.CreateUser(ctx, payload.Name, payload.Email, payload.Phone, hash)
	if err != nil {
		h.serverError(c, "create user", err)
		return
	}

	h.logger.Info("user registered", zap.Int64("user_id", id), zap.String("email", payload.Email))
	c.JSON(http.StatusCreated, router.H{"message": "Registration successful!"})
}

// Login authenticates a customer and issues a one-hour token.
func (h *Handler) Login(c router.Ctx) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, router.H{"message": "Email and password are required"})
		return
	}

	user, err := h.store.GetUserByEmail(c.Context(), payload.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		h.serverError(c, "login lookup", err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, payload.Password) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.tokens.IssueUserToken(user.ID, user.Email)
	if err != nil {
		h.serverError(c, "token issue", err)
		return
	}

	projection := userProjection(user)
	projection["full_name"] = user.Name
	c.JSON(http.StatusOK, router.H{
		"message": "Login successful! Welcome back.",
		"token":   token,
		"user":    projection,
	})
}

// AuthCheck verifies the bearer token and re-fetches the account.
func (h *Handler) AuthCheck(c router.Ctx) {
	claims, ok := h.userFromBearer(c)
	if !ok {
		return
	}
	user, err := h.store.GetUserByID(c.Context(), claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Unauthorized: User not found"})
		return
	}
	if err != nil {
		h.serverError(c, "auth check lookup", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Authorized", "user": userProjection(user)})
}

// DashboardContent returns the authenticated landing payload.
func (h *Handler) DashboardContent(c router.Ctx) {
	claims, ok := h.userFromBearer(c)
	if !ok {
		return
	}
	user, err := h.store.GetUserByID(c.Context(), claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Unauthorized: User not found"})
		return
	}
	if err != nil {
		h.serverError(c, "dashboard lookup", err)
		return
	}

	first, _ := splitName(user.Name)
	c.JSON(http.StatusOK, router.H{
		"message":        fmt.Sprintf("Welcome to your dashboard, %s!", first),
		"userData":       userProjection(user),
		"dashboardStats": "Your personalized statistics are here.",
		"recentActivity": []string{"User logged in", "Viewed analytics"},
	})
}

func (h *Handler) serverError(c router.Ctx, op string, err error) {
	h.logger.Error(op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, router.H{"message": "Internal server error"})
}
