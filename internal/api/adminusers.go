package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/auth"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

// ListAdmins returns all back-office accounts without password hashes.
func (h *Handler) ListAdmins(c router.Ctx) {
	admins, err := h.store.ListAdmins(c.Context())
	if err != nil {
		h.serverError(c, "list admins", err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// AdminMe re-fetches the logged-in admin from its session cookie.
func (h *Handler) AdminMe(c router.Ctx) {
	claims, ok := h.adminFromCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Unauthorized (no token)"})
		return
	}

	admin, err := h.store.GetAdminByID(c.Context(), claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, router.H{"message": "Admin not found"})
		return
	}
	if err != nil {
		h.serverError(c, "admin me lookup", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "admin": admin})
}

// CreateAdmin provisions a new back-office account.
func (h *Handler) CreateAdmin(c router.Ctx) {
	var payload struct {
		Name        string          `json:"name"`
		Email       string          `json:"email"`
		Password    string          `json:"password"`
		Phone       *string         `json:"phone"`
		Role        string          `json:"role"`
		Permissions json.RawMessage `json:"permissions"`
	}
	if err := c.BindJSON(&payload); err != nil ||
		payload.Name == "" || payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, router.H{"message": "Name, email, and password are required!"})
		return
	}

	ctx := c.Context()
	exists, err := h.store.AdminEmailExists(ctx, payload.Email, 0)
	if err != nil {
		h.serverError(c, "admin email check", err)
		return
	}
	if exists {
		c.JSON(http.StatusConflict, router.H{"message": "Admin with this email already exists!"})
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		h.serverError(c, "admin password hash", err)
		return
	}

	role := payload.Role
	if role == "" {
		role = "admin"
	}
	permissions := payload.Permissions
	if len(permissions) == 0 {
		permissions = json.RawMessage("{}")
	}

	id, err := h.store.CreateAdmin(ctx, payload.Name, payload.Email, hash, payload.Phone, role, permissions)
	if err != nil {
		h.serverError(c, "create admin", err)
		return
	}

	h.logger.Info("admin created", zap.Int64("admin_id", id), zap.String("email", payload.Email))
	c.JSON(http.StatusOK, router.H{
		"message": "Admin created successfully!",
		"data": router.H{
			"id":    id,
			"name":  payload.Name,
			"email": payload.Email,
			"role":  role,
		},
	})
}

// UpdateAdmin edits an admin's contact fields.
func (h *Handler) UpdateAdmin(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/users/")

	var payload struct {
		Name  string  `json:"name"`
		Email string  `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Name == "" || payload.Email == "" {
		c.JSON(http.StatusBadRequest, router.H{"message": "Name and email are required!"})
		return
	}

	ctx := c.Context()
	exists, err := h.store.AdminEmailExists(ctx, payload.Email, id)
	if err != nil {
		h.serverError(c, "admin email check", err)
		return
	}
	if exists {
		c.JSON(http.StatusConflict, router.H{"message": "Email already exists for another admin!"})
		return
	}

	affected, err := h.store.UpdateAdmin(ctx, id, payload.Name, payload.Email, payload.Phone)
	if err != nil {
		h.serverError(c, "update admin", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"message": "Admin not found!"})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"message": "Admin updated successfully!",
		"data": router.H{
			"id":    id,
			"name":  payload.Name,
			"email": payload.Email,
			"phone": payload.Phone,
		},
	})
}

// DeleteAdmin removes a back-office account.
func (h *Handler) DeleteAdmin(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/users/")
	affected, err := h.store.DeleteAdmin(c.Context(), id)
	if err != nil {
		h.serverError(c, "delete admin", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"message": "Admin not found!"})
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Admin deleted successfully!"})
}

func (h *Handler) AdminUsersFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Admin endpoint not found"})
}
