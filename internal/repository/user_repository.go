package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/oliFYP/RingReady/internal/model"
	"github.com/oliFYP/RingReady/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,email,password_hash,display_name,role,bio,weight_class,experience,wins,losses,draws,is_active,created_at,updated_at"

// Create inserts a user and returns its ID.  The email is normalized to
// lower case; the role string has already been validated by the caller.
func (r *UserRepo) Create(ctx context.Context, email, password, displayName string, role model.Role, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	// bio has no column default (TEXT cannot carry one), so strict-mode
	// MySQL requires it in the column list; new accounts start with an
	// empty bio
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, display_name, role, bio) VALUES (?,?,?,?,?)",
		email, hash, displayName, string(role), "")
	if err != nil {
		// 1062 is the MySQL duplicate-key error
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// UpdateProfile persists the mutable profile fields.  The role and email
// are deliberately not part of the statement: both are immutable after
// registration.  Boxer-only fields are written unconditionally; the
// handler zeroes them for non-boxer roles.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, bio, weightClass, experience string, wins, losses, draws uint32) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET bio=?, weight_class=?, experience=?, wins=?, losses=?, draws=?, updated_at=NOW()
		 WHERE id=?`,
		bio, weightClass, experience, wins, losses, draws, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// zero rows can also mean "no change"; confirm existence
		var one int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=?", id).Scan(&one); err == sql.ErrNoRows {
			return ErrUserNotFound
		}
	}
	return nil
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &role,
		&u.Bio, &u.WeightClass, &u.Experience, &u.Wins, &u.Losses, &u.Draws,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	u.Role = model.Role(role)
	return u, err
}
