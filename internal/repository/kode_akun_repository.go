package repository

import (
	"context"

	"spm-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type KodeAkunRepository struct {
	db *sqlx.DB
}

func NewKodeAkunRepository(db *sqlx.DB) *KodeAkunRepository {
	return &KodeAkunRepository{db: db}
}

func (r *KodeAkunRepository) FindAll(ctx context.Context) ([]models.KodeAkun, error) {
	kodeAkuns := []models.KodeAkun{}
	query := "SELECT id, kode, nama FROM kode_akun ORDER BY kode ASC, nama ASC"
	if err := r.db.SelectContext(ctx, &kodeAkuns, query); err != nil {
		return nil, err
	}
	return kodeAkuns, nil
}

func (r *KodeAkunRepository) FindByID(ctx context.Context, id int) (*models.KodeAkun, error) {
	var kodeAkun models.KodeAkun
	query := "SELECT id, kode, nama FROM kode_akun WHERE id = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &kodeAkun, query, id); err != nil {
		return nil, translateError(err)
	}
	return &kodeAkun, nil
}

// Upsert returns the id of the (kode, nama) pair, creating it when missing.
func (r *KodeAkunRepository) Upsert(ctx context.Context, kode, nama string) (int, error) {
	query := `INSERT INTO kode_akun (kode, nama) VALUES (?, ?)
	          ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`
	result, err := r.db.ExecContext(ctx, query, kode, nama)
	if err != nil {
		return 0, err
	}
	return insertedID(result)
}
