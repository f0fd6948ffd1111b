package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/jsonx"
	"github.com/parthbuilds/shubhaKuteer2/internal/models"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
	"github.com/parthbuilds/shubhaKuteer2/internal/util"
)

// productPayload is the create/update body. Numeric fields tolerate string
// values and the JSON columns tolerate string-wrapped encodings; a payload
// is only rejected for missing name, category or price.
type productPayload struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Type        *string         `json:"type"`
	Price       jsonx.Float     `json:"price"`
	OriginPrice *jsonx.Float    `json:"origin_price"`
	Quantity    jsonx.Int       `json:"quantity"`
	Sold        jsonx.Int       `json:"sold"`
	Rate        jsonx.Float     `json:"rate"`
	Brand       *string         `json:"brand"`
	Description *string         `json:"description"`
	Sizes       json.RawMessage `json:"sizes"`
	Variations  json.RawMessage `json:"variations"`
	Gallery     json.RawMessage `json:"gallery"`
	MainImage   *string         `json:"main_image"`
	IsNew       jsonx.Flag      `json:"is_new"`
	OnSale      jsonx.Flag      `json:"on_sale"`
	Slug        string          `json:"slug"`
	Action      string          `json:"action"`
}

// buildProduct normalizes a payload into a row: slug derivation, thumb
// selection and the tolerant JSON column parses, each degrading to its
// empty value rather than failing the request.
func (h *Handler) buildProduct(p *productPayload) *models.Product {
	gallery, ok := jsonx.StringArray(p.Gallery)
	if !ok {
		h.logger.Warn("unparseable gallery payload, storing empty", zap.String("product", p.Name))
	}
	if gallery == nil {
		gallery = []string{}
	}
	sizes, ok := jsonx.StringArray(p.Sizes)
	if !ok {
		h.logger.Warn("unparseable sizes payload, storing empty", zap.String("product", p.Name))
	}
	if sizes == nil {
		sizes = []string{}
	}
	variations, ok := jsonx.VariationMap(p.Variations)
	if !ok {
		h.logger.Warn("unparseable variations payload, storing empty", zap.String("product", p.Name))
	}
	if variations == nil {
		variations = map[string][]string{}
	}

	slug := strings.TrimSpace(p.Slug)
	if slug == "" {
		slug = util.Slugify(p.Name)
	}

	var thumb *string
	if len(gallery) > 0 {
		thumb = &gallery[0]
	} else if p.MainImage != nil && *p.MainImage != "" {
		thumb = p.MainImage
	}

	action := p.Action
	if action == "" {
		action = "add to cart"
	}

	var originPrice *float64
	if p.OriginPrice != nil && float64(*p.OriginPrice) != 0 {
		v := float64(*p.OriginPrice)
		originPrice = &v
	}

	galleryJSON, _ := json.Marshal(gallery)
	sizesJSON, _ := json.Marshal(sizes)
	variationsJSON, _ := json.Marshal(variations)

	return &models.Product{
		Name:        p.Name,
		Slug:        slug,
		Price:       float64(p.Price),
		OriginPrice: originPrice,
		Quantity:    int(p.Quantity),
		Sold:        int(p.Sold),
		Rate:        float64(p.Rate),
		IsNew:       int(p.IsNew),
		OnSale:      int(p.OnSale),
		Category:    p.Category,
		Description: p.Description,
		Type:        p.Type,
		Brand:       p.Brand,
		MainImage:   p.MainImage,
		ThumbImage:  thumb,
		Gallery:     galleryJSON,
		Sizes:       sizesJSON,
		Variations:  variationsJSON,
		Action:      action,
	}
}

// ListProducts returns the admin catalog grid as a bare array.
func (h *Handler) ListProducts(c router.Ctx) {
	products, err := h.store.ListProducts(c.Context())
	if err != nil {
		h.serverError(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct inserts a product under the next manual id.
func (h *Handler) CreateProduct(c router.Ctx) {
	var payload productPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "Invalid request body"})
		return
	}
	if payload.Name == "" || payload.Category == "" || payload.Price == 0 {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"error":   "Missing required fields: name, category, price",
		})
		return
	}

	ctx := c.Context()
	product := h.buildProduct(&payload)

	nextID, err := h.store.NextProductID(ctx)
	if err != nil {
		h.serverError(c, "next product id", err)
		return
	}
	product.ID = nextID

	if err := h.store.InsertProduct(ctx, product); err != nil {
		h.serverError(c, "insert product", err)
		return
	}

	util.ProductsCreatedTotal.Inc()
	h.logger.Info("product created",
		zap.Int64("product_id", nextID),
		zap.String("slug", product.Slug))

	c.JSON(http.StatusCreated, router.H{
		"success":   true,
		"message":   "Product added successfully!",
		"productId": nextID,
		"insertedProduct": router.H{
			"id":         nextID,
			"name":       product.Name,
			"slug":       product.Slug,
			"category":   product.Category,
			"main_image": product.MainImage,
			"price":      product.Price,
		},
	})
}

// GetProduct returns one full product row.
func (h *Handler) GetProduct(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/products/")
	product, err := h.store.GetProductByID(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, router.H{"message": "Product not found"})
		return
	}
	if err != nil {
		h.serverError(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct rewrites a product row under the same normalization rules
// as create.
func (h *Handler) UpdateProduct(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/products/")

	var payload productPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, router.H{"success": false, "error": "Invalid request body"})
		return
	}
	if payload.Name == "" || payload.Category == "" || payload.Price == 0 {
		c.JSON(http.StatusBadRequest, router.H{
			"success": false,
			"error":   "Missing required fields: name, category, price",
		})
		return
	}

	product := h.buildProduct(&payload)
	product.ID = id

	affected, err := h.store.UpdateProduct(c.Context(), product)
	if err != nil {
		h.serverError(c, "update product", err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, router.H{"message": "Product not found or no changes made."})
		return
	}
	c.JSON(http.StatusOK, router.H{
		"success":   true,
		"message":   "Product updated successfully!",
		"productId": id,
	})
}

// DeleteProduct removes a product. Success is reported whether or not a
// row matched; the other resource groups check affected rows, this one
// never has.
func (h *Handler) DeleteProduct(c router.Ctx) {
	id, _ := idFromPath(c.Path(), "/api/admin/products/")
	if err := h.store.DeleteProduct(c.Context(), id); err != nil {
		h.serverError(c, "delete product", err)
		return
	}
	c.JSON(http.StatusOK, router.H{"message": "Product deleted successfully!"})
}

func (h *Handler) ProductsFallthrough(c router.Ctx) {
	c.JSON(http.StatusNotFound, router.H{"message": "Product endpoint not found"})
}
