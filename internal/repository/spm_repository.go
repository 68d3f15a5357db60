package repository

import (
	"context"
	"fmt"
	"strings"

	"spm-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type SpmRepository struct {
	db *sqlx.DB
}

func NewSpmRepository(db *sqlx.DB) *SpmRepository {
	return &SpmRepository{db: db}
}

const spmColumns = `s.id, s.nomor_spm, s.tahun_anggaran, s.tanggal, s.total_anggaran, s.status,
	s.rejection_comment, s.drive_link, s.satker_id, s.created_at, s.updated_at`

func spmWhere(filter models.SpmFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if filter.TahunAnggaran > 0 {
		conditions = append(conditions, "s.tahun_anggaran = ?")
		args = append(args, filter.TahunAnggaran)
	}
	if filter.SatkerID > 0 {
		conditions = append(conditions, "s.satker_id = ?")
		args = append(args, filter.SatkerID)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// FindAll returns the filtered SPMs, newest first, with the unpaginated total.
func (r *SpmRepository) FindAll(ctx context.Context, filter models.SpmFilter) ([]models.SpmListItem, int64, error) {
	whereClause, args := spmWhere(filter)

	var total int64
	countQuery := "SELECT COUNT(*) FROM spm s " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + spmColumns + `, sk.nama AS satker_nama
	          FROM spm s
	          JOIN satker sk ON sk.id = s.satker_id ` + whereClause + `
	          ORDER BY s.tanggal DESC, s.id DESC`
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	spms := []models.SpmListItem{}
	if err := r.db.SelectContext(ctx, &spms, query, args...); err != nil {
		return nil, 0, err
	}
	return spms, total, nil
}

func (r *SpmRepository) FindByID(ctx context.Context, id int) (*models.Spm, error) {
	var spm models.Spm
	query := "SELECT " + spmColumns + " FROM spm s WHERE s.id = ? LIMIT 1"
	if err := r.db.GetContext(ctx, &spm, query, id); err != nil {
		return nil, translateError(err)
	}
	return &spm, nil
}

// Create stores the SPM, its rincian and their answers in one transaction.
func (r *SpmRepository) Create(ctx context.Context, spm *models.Spm, rincian []models.Rincian) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO spm (nomor_spm, tahun_anggaran, tanggal, total_anggaran, status,
	          rejection_comment, drive_link, satker_id, created_at, updated_at)
	          VALUES (:nomor_spm, :tahun_anggaran, :tanggal, :total_anggaran, :status,
	          :rejection_comment, :drive_link, :satker_id, NOW(), NOW())`
	result, err := tx.NamedExecContext(ctx, query, spm)
	if err != nil {
		return translateError(err)
	}
	spm.ID, err = insertedID(result)
	if err != nil {
		return err
	}

	for i := range rincian {
		rincian[i].SpmID = spm.ID
		if err := insertRincian(ctx, tx, &rincian[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Update rewrites the SPM header and reconciles its rincian: stored rincian
// missing from the incoming set are deleted, the rest are updated or inserted
// and every kept rincian gets its answers replaced.
func (r *SpmRepository) Update(ctx context.Context, spm *models.Spm, rincian []models.Rincian) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existingIDs []int
	if err := tx.SelectContext(ctx, &existingIDs, "SELECT id FROM rincian_spm WHERE spm_id = ? FOR UPDATE", spm.ID); err != nil {
		return err
	}

	removed, incoming := planRincianChanges(existingIDs, rincian)
	if err := deleteRincian(ctx, tx, removed); err != nil {
		return err
	}

	query := `UPDATE spm SET nomor_spm = :nomor_spm, tahun_anggaran = :tahun_anggaran, tanggal = :tanggal,
	          total_anggaran = :total_anggaran, status = :status, rejection_comment = :rejection_comment,
	          drive_link = :drive_link, satker_id = :satker_id, updated_at = NOW()
	          WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, spm); err != nil {
		return translateError(err)
	}

	for i := range incoming {
		incoming[i].SpmID = spm.ID
		if incoming[i].ID == 0 {
			if err := insertRincian(ctx, tx, &incoming[i]); err != nil {
				return err
			}
			continue
		}
		if err := updateRincian(ctx, tx, &incoming[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// planRincianChanges diffs stored rincian ids against the incoming rincian.
// It returns the ids to delete and the incoming rincian with any id that does
// not belong to this SPM reset to zero, so it is inserted instead.
func planRincianChanges(existingIDs []int, incoming []models.Rincian) ([]int, []models.Rincian) {
	existing := make(map[int]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	kept := make(map[int]bool, len(incoming))
	planned := make([]models.Rincian, len(incoming))
	for i, r := range incoming {
		if r.ID != 0 && (!existing[r.ID] || kept[r.ID]) {
			r.ID = 0
		}
		if r.ID != 0 {
			kept[r.ID] = true
		}
		planned[i] = r
	}

	removed := []int{}
	for _, id := range existingIDs {
		if !kept[id] {
			removed = append(removed, id)
		}
	}
	return removed, planned
}

func insertRincian(ctx context.Context, tx *sqlx.Tx, rincian *models.Rincian) error {
	query := `INSERT INTO rincian_spm (spm_id, kode_akun_id, kode_program, kode_kegiatan, kode_kro,
	          kode_ro, kode_komponen, kode_subkomponen, jumlah, uraian)
	          VALUES (:spm_id, :kode_akun_id, :kode_program, :kode_kegiatan, :kode_kro,
	          :kode_ro, :kode_komponen, :kode_subkomponen, :jumlah, :uraian)`
	result, err := tx.NamedExecContext(ctx, query, rincian)
	if err != nil {
		return fmt.Errorf("insert rincian: %w", err)
	}
	rincian.ID, err = insertedID(result)
	if err != nil {
		return err
	}

	return insertJawaban(ctx, tx, rincian)
}

func updateRincian(ctx context.Context, tx *sqlx.Tx, rincian *models.Rincian) error {
	query := `UPDATE rincian_spm SET kode_akun_id = :kode_akun_id, kode_program = :kode_program,
	          kode_kegiatan = :kode_kegiatan, kode_kro = :kode_kro, kode_ro = :kode_ro,
	          kode_komponen = :kode_komponen, kode_subkomponen = :kode_subkomponen,
	          jumlah = :jumlah, uraian = :uraian
	          WHERE id = :id AND spm_id = :spm_id`
	if _, err := tx.NamedExecContext(ctx, query, rincian); err != nil {
		return fmt.Errorf("update rincian %d: %w", rincian.ID, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM jawaban_flags WHERE rincian_spm_id = ?", rincian.ID); err != nil {
		return fmt.Errorf("clear answers of rincian %d: %w", rincian.ID, err)
	}
	return insertJawaban(ctx, tx, rincian)
}

func insertJawaban(ctx context.Context, tx *sqlx.Tx, rincian *models.Rincian) error {
	for i := range rincian.JawabanFlags {
		answer := &rincian.JawabanFlags[i]
		answer.RincianSpmID = rincian.ID
		result, err := tx.NamedExecContext(ctx,
			"INSERT INTO jawaban_flags (rincian_spm_id, nama, tipe) VALUES (:rincian_spm_id, :nama, :tipe)",
			answer,
		)
		if err != nil {
			return fmt.Errorf("insert answer %q: %w", answer.Nama, err)
		}
		answer.ID, err = insertedID(result)
		if err != nil {
			return fmt.Errorf("insert answer %q: %w", answer.Nama, err)
		}
	}
	return nil
}

// deleteRincian removes rincian and their answers, answers first.
func deleteRincian(ctx context.Context, tx *sqlx.Tx, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In("DELETE FROM jawaban_flags WHERE rincian_spm_id IN (?)", ids)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}

	query, args, err = sqlx.In("DELETE FROM rincian_spm WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete rincian: %w", err)
	}
	return nil
}

// Delete removes the SPM together with its rincian and answers.
func (r *SpmRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var rincianIDs []int
	if err := tx.SelectContext(ctx, &rincianIDs, "SELECT id FROM rincian_spm WHERE spm_id = ?", id); err != nil {
		return err
	}
	if err := deleteRincian(ctx, tx, rincianIDs); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM spm WHERE id = ?", id)
	if err != nil {
		return err
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SpmRepository) UpdateStatus(ctx context.Context, id int, status models.SpmStatus, comment *string) error {
	query := "UPDATE spm SET status = ?, rejection_comment = ?, updated_at = NOW() WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, status, comment, id)
	return err
}

func nomorPrefixWhere(prefixes []string) (string, []interface{}) {
	conditions := make([]string, 0, len(prefixes))
	args := make([]interface{}, 0, len(prefixes))
	for _, prefix := range prefixes {
		conditions = append(conditions, "nomor_spm LIKE ?")
		args = append(args, escapeLike(prefix)+"%")
	}
	return strings.Join(conditions, " OR "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

// CountByNomorPrefixes counts SPMs whose number starts with any prefix.
func (r *SpmRepository) CountByNomorPrefixes(ctx context.Context, prefixes []string) (int64, error) {
	if len(prefixes) == 0 {
		return 0, nil
	}
	where, args := nomorPrefixWhere(prefixes)

	var total int64
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM spm WHERE "+where, args...)
	return total, err
}

// DeleteByNomorPrefixes deletes every SPM whose number starts with any prefix.
func (r *SpmRepository) DeleteByNomorPrefixes(ctx context.Context, prefixes []string) (int64, error) {
	if len(prefixes) == 0 {
		return 0, nil
	}
	where, args := nomorPrefixWhere(prefixes)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var rincianIDs []int
	query := "SELECT r.id FROM rincian_spm r JOIN spm ON spm.id = r.spm_id WHERE " + where
	if err := tx.SelectContext(ctx, &rincianIDs, query, args...); err != nil {
		return 0, err
	}
	if err := deleteRincian(ctx, tx, rincianIDs); err != nil {
		return 0, err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM spm WHERE "+where, args...)
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, tx.Commit()
}
