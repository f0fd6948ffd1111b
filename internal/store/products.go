package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

// ListProducts returns catalog rows for the admin grid, newest first. Sizes
// and variations are omitted from the listing projection.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.SelectContext(ctx, &products, `
		SELECT id, name, slug, price, origin_price, quantity, sold,
			rate, is_new, on_sale, category, description, type, brand,
			main_image, thumb_image, gallery, action, created_at
		FROM products
		ORDER BY created_at DESC`)
	return products, err
}

// GetProductByID retrieves the full product row; ErrNotFound if absent.
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// NextProductID computes MAX(id)+1. Product ids are assigned by the caller
// rather than auto-increment; the read-then-insert is not atomic and a
// concurrent create can collide on the primary key, surfacing as an insert
// error. Accepted limitation carried over from the legacy schema.
func (s *Store) NextProductID(ctx context.Context) (int64, error) {
	var maxID sql.NullInt64
	if err := s.db.GetContext(ctx, &maxID, "SELECT MAX(id) AS max_id FROM products"); err != nil {
		return 0, fmt.Errorf("failed to read max product id: %w", err)
	}
	return maxID.Int64 + 1, nil
}

// InsertProduct writes a product row with an explicit id.
func (s *Store) InsertProduct(ctx context.Context, p *models.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products
		(id, name, slug, price, origin_price, quantity, sold, rate,
		is_new, on_sale, category, description, type, brand,
		main_image, thumb_image, gallery, sizes, variations, action)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Slug, p.Price, p.OriginPrice, p.Quantity, p.Sold, p.Rate,
		p.IsNew, p.OnSale, p.Category, p.Description, p.Type, p.Brand,
		p.MainImage, p.ThumbImage, []byte(p.Gallery), []byte(p.Sizes), []byte(p.Variations), p.Action)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// UpdateProduct rewrites every mutable column, returning affected rows. Zero
// affected means not found or value-identical; callers report not found for
// both.
func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products SET
		name=?, slug=?, price=?, origin_price=?, quantity=?, sold=?, rate=?,
		is_new=?, on_sale=?, category=?, description=?, type=?, brand=?,
		main_image=?, thumb_image=?, gallery=?, sizes=?, variations=?, action=?
		WHERE id=?`,
		p.Name, p.Slug, p.Price, p.OriginPrice, p.Quantity, p.Sold, p.Rate,
		p.IsNew, p.OnSale, p.Category, p.Description, p.Type, p.Brand,
		p.MainImage, p.ThumbImage, []byte(p.Gallery), []byte(p.Sizes), []byte(p.Variations), p.Action,
		p.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteProduct removes a product by id. Affected rows are not checked here;
// the delete endpoint reports success regardless.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}
