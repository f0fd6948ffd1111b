package api

import (
	"net/http"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
)

type bannerPayload struct {
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	BannerType     string      `json:"banner_type"`
	ImageURL       string      `json:"image_url"`
	MobileImageURL *string     `json:"mobile_image_url"`
	LinkURL        *string     `json:"link_url"`
	LinkTarget     string      `json:"link_target"`
	Position       jsonx.Int   `json:"position"`
	PageLocation   *string     `json:"page_location"`
	StartDate      *string     `json:"start_date"`
	EndDate        *string     `json:"end_date"`
	Active         *jsonx.Flag `json:"active"`
}

// toInput applies the banner defaults: link_target "_self", position 0 and
// active on when omitted.
func (p *bannerPayload) toInput() *store.BannerInput {
	linkTarget := p.LinkTarget
	if linkTarget == "" {
		linkTarget = "_self"
	}
	active := 1
	if p.Active != nil {
		active = int(*p.Active)
	}
	return &store.BannerInput{
		Title:          p.Title,
		Description:    p.Description,
		BannerType:     p.BannerType,
		ImageURL:       p.ImageURL,
		MobileImageURL: p.MobileImageURL,
		LinkURL:        p.LinkURL,
		LinkTarget:     linkTarget,
		Position:       int(p.Position),
		PageLocation:   p.PageLocation,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Active:         active,
	}
}

// ListBanners returns banners ordered for page placement.
func (h *Handler) ListBanners(c router.Ctx) {
	banners, err := h.store.ListBanners(c.Context())
	if err != nil {
		h.serverError(c, "list banners", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "banners": banners})
}

// CreateBanner inserts a banner.
func (h *Handler) CreateBanner(c router.Ctx) {
	var payload bannerPayload
	if err := c.BindJSON(&payload); err != nil ||
		payload.Title == "" || payload.BannerType == "" || payload.ImageURL == "" {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"message": "Title, banner type, and image URL are required",
		})
		return
	}

	id, err := h.store.CreateBanner(c.Context(), payload.toInput())
	if err != nil {
		h.serverError(c, "create banner", err)
		return
	}
	c.JSON(http.StatusCreated, router.H{
		"success": true,
		"message": "Banner created successfully",
		"id":      id,
	})
}

// UpdateBanner rewrites a banner row.
func (h *Handler) UpdateBanner(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/banners/")

	var payload bannerPayload
	if err := c.BindJSON(&payload); err != nil ||
		payload.Title == "" || payload.BannerType == "" || payload.ImageURL == "" {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"message": "Title, banner type, and image URL are required",
		})
		return
	}

	affected, err := h.store.UpdateBanner(c.Context(), id, payload.toInput())
	if err != nil {
		h.serverError(c, "update banner", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"success": false, "message": "Banner not found"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "message": "Banner updated successfully"})
}

// DeleteBanner removes a banner.
func (h *Handler) DeleteBanner(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/banners/")
	affected, err := h.store.DeleteBanner(c.Context(), id)
	if err != nil {
		h.serverError(c, "delete banner", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"success": false, "message": "Banner not found"})
		return
	}
	c.JSON(http.StatusOK, router.H{"success": true, "message": "Banner deleted successfully"})
}

func (h *Handler) BannersFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Banner endpoint not found"})
}
