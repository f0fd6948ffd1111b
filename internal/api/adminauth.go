package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/auth"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

const adminCookieName = "adminToken"

// adminFromCookie verifies the adminToken cookie; false means the caller
// writes its own 401.
func (h *Handler) adminFromCookie(c router.Ctx) (*auth.AdminClaims, bool) {
	raw, err := c.Cookie(adminCookieName)
	if err != nil || raw == "" {
		return nil, false
	}
	claims, err := h.tokens.VerifyAdminToken(raw)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func adminClaimsProjection(claims *auth.AdminClaims) router.H {
	return router.H{
		"id":    claims.ID,
		"email": claims.Email,
		"role":  claims.Role,
	}
}

// AdminLogin authenticates a back-office account and sets the session
// cookie. Bad or missing credentials are indistinguishable from unknown
// accounts on purpose.
func (h *Handler) AdminLogin(c router.Ctx) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = c.BindJSON(&payload)

	admin, err := h.store.GetAdminByEmail(c.Context(), payload.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		h.serverError(c, "admin login lookup", err)
		return
	}
	if !auth.CheckPassword(admin.PasswordHash, payload.Password) {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.tokens.IssueAdminToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		h.serverError(c, "admin token issue", err)
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   7200,
		HttpOnly: true,
		Secure:   h.isProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("admin login", zap.Int64("admin_id", admin.ID), zap.String("email", admin.Email))
	c.JSON(http.StatusOK, router.H{
		"message":  "Login successful",
		"redirect": "/admin/index.html",
		"admin": router.H{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// AdminLogout clears the session cookie.
func (h *Handler) AdminLogout(c router.Ctx) {
	c.SetCookie(&http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.isProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	c.JSON(http.StatusOK, router.H{
		"message":  "Logged out",
		"redirect": "/admin/login.html",
	})
}

// AdminAuthCheck reports whether the session cookie is still valid.
func (h *Handler) AdminAuthCheck(c router.Ctx) {
	claims, ok := h.adminFromCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, router.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"message": "Authorized",
		"admin":   adminClaimsProjection(claims),
	})
}

// AdminPagesGuard protects the admin pages; the login page and the assets
// directory are excluded at the route table.
func (h *Handler) AdminPagesGuard(c router.Ctx) {
	claims, ok := h.adminFromCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, router.H{
			"message":  "Unauthorized",
			"redirect": "/admin/login.html",
		})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"message": "Authorized",
		"admin":   adminClaimsProjection(claims),
	})
}
