package repository

import (
	"context"

	"spm-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type SatkerRepository struct {
	db *sqlx.DB
}

func NewSatkerRepository(db *sqlx.DB) *SatkerRepository {
	return &SatkerRepository{db: db}
}

func (r *SatkerRepository) FindAll(ctx context.Context) ([]models.Satker, error) {
	satkers := []models.Satker{}
	query := "SELECT id, kode_satker, nama, eselon FROM satker ORDER BY kode_satker ASC"
	if err := r.db.SelectContext(ctx, &satkers, query); err != nil {
		return nil, err
	}
	return satkers, nil
}

func (r *SatkerRepository) FindByID(ctx context.Context, id int) (*models.Satker, error) {
	var satker models.Satker
	query := "SELECT id, kode_satker, nama, eselon FROM satker WHERE id = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &satker, query, id); err != nil {
		return nil, translateError(err)
	}
	return &satker, nil
}

func (r *SatkerRepository) FindByKode(ctx context.Context, kode string) (*models.Satker, error) {
	var satker models.Satker
	query := "SELECT id, kode_satker, nama, eselon FROM satker WHERE kode_satker = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &satker, query, kode); err != nil {
		return nil, translateError(err)
	}
	return &satker, nil
}

// Upsert inserts a satker or refreshes its name and eselon when the kode exists.
func (r *SatkerRepository) Upsert(ctx context.Context, satker *models.Satker) error {
	query := `INSERT INTO satker (kode_satker, nama, eselon) VALUES (:kode_satker, :nama, :eselon)
	          ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), nama = VALUES(nama), eselon = VALUES(eselon)`
	result, err := r.db.NamedExecContext(ctx, query, satker)
	if err != nil {
		return err
	}
	satker.ID, err = insertedID(result)
	return err
}
