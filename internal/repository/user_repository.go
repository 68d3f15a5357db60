package repository

import (
	"context"

	"spm-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := "SELECT id, email, name, password, role, satker_id FROM users WHERE email = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	query := "SELECT id, email, name, password, role, satker_id FROM users WHERE id = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.UserListItem, error) {
	users := []models.UserListItem{}
	query := `SELECT u.id, u.email, u.name, u.password, u.role, u.satker_id, s.nama AS satker_nama
	          FROM users u
	          LEFT JOIN satker s ON s.id = u.satker_id
	          ORDER BY u.name ASC`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (email, name, password, role, satker_id)
	          VALUES (:email, :name, :password, :role, :satker_id)`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return translateError(err)
	}
	user.ID, err = insertedID(result)
	return err
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET email = :email, name = :name, role = :role, satker_id = :satker_id
	          WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, user)
	return translateError(err)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := "UPDATE users SET password = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
