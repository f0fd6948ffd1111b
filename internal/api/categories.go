package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/util"
)

// ListCategories serves both the admin grid and the public storefront menu.
func (h *Handler) ListCategories(c router.Ctx) {
	categories, err := h.store.ListCategories(c.Context())
	if err != nil {
		h.serverError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory inserts a category; data_item defaults to the lowercased
// name with whitespace removed.
func (h *Handler) CreateCategory(c router.Ctx) {
	var payload struct {
		Name     string    `json:"name"`
		Sale     jsonx.Int `json:"sale"`
		DataItem string    `json:"data_item"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Name == "" {
		c.JSON(http.StatusBadRequest, router.H{"message": "Category name is required!"})
		return
	}

	dataItem := strings.TrimSpace(payload.DataItem)
	if dataItem == "" {
		dataItem = util.DataItem(payload.Name)
	}

	id, err := h.store.CreateCategory(c.Context(), payload.Name, dataItem, int(payload.Sale))
	if err != nil {
		h.serverError(c, "create category", err)
		return
	}
	c.JSON(http.StatusOK, router.H{
		"message": "Category added successfully!",
		"data": router.H{
			"id":        id,
			"name":      payload.Name,
			"data_item": dataItem,
			"sale":      int(payload.Sale),
		},
	})
}

// DeleteCategory removes a category; success regardless of a match.
func (h *Handler) DeleteCategory(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/categories/")
	if err := h.store.DeleteCategory(c.Context(), id); err != nil {
		h.serverError(c, "delete category", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Category deleted successfully!"})
}

func (h *Handler) CategoriesFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Category endpoint not found"})
}

// ListAttributes returns attributes with their category name joined in.
func (h *Handler) ListAttributes(c router.Ctx) {
	attributes, err := h.store.ListAttributes(c.Context())
	if err != nil {
		h.serverError(c, "list attributes", err)
		return
	}
	c.JSON(http.StatusOK, attributes)
}

// CreateAttribute inserts an attribute; attribute_values must be a
// non-empty array.
func (h *Handler) CreateAttribute(c router.Ctx) {
	var payload struct {
		CategoryID      jsonx.Int       `json:"category_id"`
		AttributeName   string          `json:"attribute_name"`
		AttributeValues json.RawMessage `json:"attribute_values"`
	}
	if err := c.BindJSON(&payload); err != nil ||
		payload.CategoryID == 0 || payload.AttributeName == "" || len(payload.AttributeValues) == 0 {
		c.JSON(http.StatusBadRequest, router.H{
			"error": "Missing required fields: category_id, attribute_name, and attribute_values",
		})
		return
	}

	var values []json.RawMessage
	if err := json.Unmarshal(payload.AttributeValues, &values); err != nil || len(values) == 0 {
		c.JSON(http.StatusBadRequest, router.H{
			"error": "attribute_values must be a non-empty array of objects.",
		})
		return
	}

	id, err := h.store.CreateAttribute(c.Context(), int64(payload.CategoryID), payload.AttributeName, payload.AttributeValues)
	if err != nil {
		h.serverError(c, "create attribute", err)
		return
	}
	c.JSON(http.StatusCreated, router.H{
		"success": true,
		"id":      id,
		"message": "Attribute added successfully",
	})
}

// DeleteAttribute removes an attribute; success regardless of a match.
func (h *Handler) DeleteAttribute(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/attributes/")
	if err := h.store.DeleteAttribute(c.Context(), id); err != nil {
		h.serverError(c, "delete attribute", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Attribute deleted successfully!"})
}

func (h *Handler) AttributesFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Attribute endpoint not found"})
}
