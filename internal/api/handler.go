// Package api holds the HTTP handlers behind the dispatch table. Handlers
// receive the router's abstract request context and never touch a concrete
// transport.
package api

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/auth"
	"github.com/parthbuilds/shubhaKuteer2/internal/images"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/service"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

// Handler bundles the dependencies every route handler draws from.
type Handler struct {
	store  *store.Store
	tokens *auth.Tokens
	orders *service.OrderService
	images images.Store
	logger *zap.Logger
	env    string
}

func NewHandler(s *store.Store, tokens *auth.Tokens, orders *service.OrderService, imgs images.Store, logger *zap.Logger, env string) *Handler {
	return &Handler{
		store:  s,
		tokens: tokens,
		orders: orders,
		images: imgs,
		logger: logger,
		env:    env,
	}
}

func (h *Handler) isProduction() bool { return h.env == "production" }

// idFromPath extracts the numeric id that follows prefix in the request
// path, tolerating a trailing sub-segment like /42/delivery-status.
func idFromPath(path, prefix string) (int64, bool) {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[:idx]
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bearerToken pulls the token out of an Authorization: Bearer header.
func bearerToken(c router.Ctx) (string, bool) {
	header := c.Header("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// userFromBearer verifies the customer token on the request; false means
// the 401 has already been written.
func (h *Handler) userFromBearer(c router.Ctx) (*auth.UserClaims, bool) {
	raw, ok := bearerToken(c)
	if !ok {
		c.JSON(401, router.H{"message": "Unauthorized: No token provided"})
		return nil, false
	}
	claims, err := h.tokens.VerifyUserToken(raw)
	if err != nil {
		c.JSON(401, router.H{"message": "Unauthorized: Invalid token"})
		return nil, false
	}
	return claims, true
}
