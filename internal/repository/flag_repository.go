package repository

import (
	"context"

	"spm-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type FlagRepository struct {
	db *sqlx.DB
}

func NewFlagRepository(db *sqlx.DB) *FlagRepository {
	return &FlagRepository{db: db}
}

func (r *FlagRepository) FindByKodeAkun(ctx context.Context, kodeAkunID int) ([]models.Flag, error) {
	flags := []models.Flag{}
	query := "SELECT id, nama, tipe, kode_akun_id FROM flags WHERE kode_akun_id = ? ORDER BY id ASC"
	if err := r.db.SelectContext(ctx, &flags, query, kodeAkunID); err != nil {
		return nil, err
	}
	return flags, nil
}

func (r *FlagRepository) FindByID(ctx context.Context, id int) (*models.Flag, error) {
	var flag models.Flag
	query := "SELECT id, nama, tipe, kode_akun_id FROM flags WHERE id = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &flag, query, id); err != nil {
		return nil, translateError(err)
	}
	return &flag, nil
}

// CountByKodeAkun returns the number of required flags per kode akun id.
// Ids without flags are present with a zero count.
func (r *FlagRepository) CountByKodeAkun(ctx context.Context, kodeAkunIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(kodeAkunIDs))
	if len(kodeAkunIDs) == 0 {
		return counts, nil
	}
	for _, id := range kodeAkunIDs {
		counts[id] = 0
	}

	query, args, err := sqlx.In(
		"SELECT kode_akun_id, COUNT(*) AS total FROM flags WHERE kode_akun_id IN (?) GROUP BY kode_akun_id",
		kodeAkunIDs,
	)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		KodeAkunID int `db:"kode_akun_id"`
		Total      int `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.KodeAkunID] = row.Total
	}
	return counts, nil
}

func (r *FlagRepository) Create(ctx context.Context, flag *models.Flag) error {
	query := "INSERT INTO flags (nama, tipe, kode_akun_id) VALUES (:nama, :tipe, :kode_akun_id)"
	result, err := r.db.NamedExecContext(ctx, query, flag)
	if err != nil {
		return translateError(err)
	}
	flag.ID, err = insertedID(result)
	return err
}

func (r *FlagRepository) Update(ctx context.Context, flag *models.Flag) error {
	query := "UPDATE flags SET nama = :nama, tipe = :tipe WHERE id = :id"
	_, err := r.db.NamedExecContext(ctx, query, flag)
	return translateError(err)
}

func (r *FlagRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM flags WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Upsert creates the flag or refreshes its declared type.
func (r *FlagRepository) Upsert(ctx context.Context, flag *models.Flag) error {
	query := `INSERT INTO flags (nama, tipe, kode_akun_id) VALUES (:nama, :tipe, :kode_akun_id)
	          ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), tipe = VALUES(tipe)`
	result, err := r.db.NamedExecContext(ctx, query, flag)
	if err != nil {
		return err
	}
	flag.ID, err = insertedID(result)
	return err
}
