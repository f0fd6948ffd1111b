package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/router"
)

// Test is a liveness echo.
func (h *Handler) Test(c router.Ctx) {
	c.JSON(http.StatusOK, router.H{
		"message":     "API is working",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.env,
	})
}

// Health probes the database.
func (h *Handler) Health(c router.Ctx) {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Healthcheck(ctx); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DeprecatedUsers answers the retired users endpoint.
func (h *Handler) DeprecatedUsers(c router.Ctx) {
	c.JSON(http.StatusGone, router.H{
		"message": "This endpoint has been deprecated",
		"note":    "User management is now handled through the database. Use /api/admin/users routes.",
	})
}

// CloudinaryDelete removes a hosted image by public id.
func (h *Handler) CloudinaryDelete(c router.Ctx) {
	var payload struct {
		PublicID string `json:"public_id"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.PublicID == "" {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "message": "public_id is required"})
		return
	}
	if h.images == nil {
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "message": "Image storage is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	result, err := h.images.Destroy(ctx, payload.PublicID)
	if err != nil {
		h.logger.Error("cloudinary delete failed",
			zap.String("public_id", payload.PublicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, router.H{"success": false, "message": "Failed to delete image from Cloudinary"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "result": result})
}
