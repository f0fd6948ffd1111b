package store

import (
	"context"
	"fmt"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

// BannerInput carries validated banner fields for insert/update. Dates stay
// as strings; MySQL coerces them into the DATETIME columns.
type BannerInput struct {
	Title          string
	Description    *string
	BannerType     string
	ImageURL       string
	MobileImageURL *string
	LinkURL        *string
	LinkTarget     string
	Position       int
	PageLocation   *string
	StartDate      *string
	EndDate        *string
	Active         int
}

// ListBanners returns banners ordered by position then recency.
func (s *Store) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := s.db.SelectContext(ctx, &banners,
		"SELECT * FROM banners ORDER BY position ASC, created_at DESC")
	return banners, err
}

// CreateBanner inserts a banner and returns its id.
func (s *Store) CreateBanner(ctx context.Context, b *BannerInput) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO banners (title, description, banner_type, image_url, mobile_image_url,
			link_url, link_target, position, page_location, start_date, end_date, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Title, b.Description, b.BannerType, b.ImageURL, b.MobileImageURL,
		b.LinkURL, b.LinkTarget, b.Position, b.PageLocation, b.StartDate, b.EndDate, b.Active)
	if err != nil {
		return 0, fmt.Errorf("failed to insert banner: %w", err)
	}
	return res.LastInsertId()
}

// UpdateBanner rewrites a banner row, returning affected rows.
func (s *Store) UpdateBanner(ctx context.Context, id int64, b *BannerInput) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE banners SET title=?, description=?, banner_type=?, image_url=?,
			mobile_image_url=?, link_url=?, link_target=?, position=?,
			page_location=?, start_date=?, end_date=?, active=?
		WHERE id=?`,
		b.Title, b.Description, b.BannerType, b.ImageURL, b.MobileImageURL,
		b.LinkURL, b.LinkTarget, b.Position, b.PageLocation, b.StartDate, b.EndDate, b.Active, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteBanner removes a banner, returning affected rows.
func (s *Store) DeleteBanner(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM banners WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
