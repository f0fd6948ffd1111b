package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/parthbuilds/shubhaKuteer2/internal/models"
)

// GetAdminByEmail retrieves an admin by email; ErrNotFound if absent.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.GetContext(ctx, &admin, "SELECT * FROM admins WHERE email = ?", email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetAdminByID retrieves an admin by id; ErrNotFound if absent.
func (s *Store) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.GetContext(ctx, &admin,
		"SELECT id, name, email, password_hash, role, phone, permissions, created_at FROM admins WHERE id = ? LIMIT 1", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListAdmins returns all admins, newest first, without password hashes.
func (s *Store) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins := []models.Admin{}
	err := s.db.SelectContext(ctx, &admins,
		"SELECT id, name, email, phone, role, permissions, created_at FROM admins ORDER BY created_at DESC")
	return admins, err
}

// AdminEmailExists checks whether any admin uses the email. excludeID skips
// one admin, for update-time conflict checks; pass 0 to check all.
func (s *Store) AdminEmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var id int64
	var err error
	if excludeID > 0 {
		err = s.db.GetContext(ctx, &id, "SELECT id FROM admins WHERE email = ? AND id != ?", email, excludeID)
	} else {
		err = s.db.GetContext(ctx, &id, "SELECT id FROM admins WHERE email = ?", email)
	}
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateAdmin inserts a new admin and returns its id.
func (s *Store) CreateAdmin(ctx context.Context, name, email, passwordHash string, phone *string, role string, permissions []byte) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO admins (name, email, password_hash, phone, role, permissions) VALUES (?, ?, ?, ?, ?, ?)",
		name, email, passwordHash, phone, role, permissions)
	if err != nil {
		return 0, fmt.Errorf("failed to insert admin: %w", err)
	}
	return res.LastInsertId()
}

// UpdateAdmin updates name, email and phone, returning affected rows.
func (s *Store) UpdateAdmin(ctx context.Context, id int64, name, email string, phone *string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE admins SET name = ?, email = ?, phone = ? WHERE id = ?", name, email, phone, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAdmin removes an admin, returning affected rows.
func (s *Store) DeleteAdmin(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM admins WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
