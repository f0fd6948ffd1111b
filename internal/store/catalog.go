package store

import (
	"context"
	"fmt"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

// ListCategories returns all categories, newest first.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.SelectContext(ctx, &categories,
		"SELECT id, name, data_item, sale, created_at FROM categories ORDER BY created_at DESC")
	return categories, err
}

// CreateCategory inserts a category and returns its id.
func (s *Store) CreateCategory(ctx context.Context, name, dataItem string, sale int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, data_item, sale) VALUES (?, ?, ?)",
		name, dataItem, sale)
	if err != nil {
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}
	return res.LastInsertId()
}

// DeleteCategory removes a category by id, affected rows unchecked.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	return err
}

// ListAttributes returns attributes joined with their category name.
func (s *Store) ListAttributes(ctx context.Context) ([]models.Attribute, error) {
	attributes := []models.Attribute{}
	err := s.db.SelectContext(ctx, &attributes, `
		SELECT a.id, a.attribute_name, a.attribute_values, a.created_at,
			c.name AS category_name
		FROM attributes a
		LEFT JOIN categories c ON a.category_id = c.id
		ORDER BY a.created_at DESC`)
	return attributes, err
}

// CreateAttribute inserts an attribute and returns its id. attributeValues
// is the already-validated JSON value list.
func (s *Store) CreateAttribute(ctx context.Context, categoryID int64, name string, attributeValues []byte) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO attributes (category_id, attribute_name, attribute_values) VALUES (?, ?, ?)",
		categoryID, name, attributeValues)
	if err != nil {
		return 0, fmt.Errorf("failed to insert attribute: %w", err)
	}
	return res.LastInsertId()
}

// DeleteAttribute removes an attribute by id, affected rows unchecked.
func (s *Store) DeleteAttribute(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM attributes WHERE id = ?", id)
	return err
}
