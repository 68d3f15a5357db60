package repository

import (
	"context"
	"strings"

	"spm-backend/internal/models"

	"github.com/jmoiron/sqlx"
)

type RincianRepository struct {
	db *sqlx.DB
}

func NewRincianRepository(db *sqlx.DB) *RincianRepository {
	return &RincianRepository{db: db}
}

const rincianDetailSelect = `SELECT r.id, r.spm_id, r.kode_akun_id, r.kode_program, r.kode_kegiatan, r.kode_kro,
	r.kode_ro, r.kode_komponen, r.kode_subkomponen, r.jumlah, r.uraian,
	ka.kode AS kode_akun_kode, ka.nama AS kode_akun_nama,
	s.nomor_spm, s.tahun_anggaran, s.tanggal AS spm_tanggal, s.status AS spm_status,
	s.satker_id, sk.nama AS satker_nama
	FROM rincian_spm r
	JOIN kode_akun ka ON ka.id = r.kode_akun_id
	JOIN spm s ON s.id = r.spm_id
	JOIN satker sk ON sk.id = s.satker_id`

func rincianWhere(filter models.RincianFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if filter.SatkerID > 0 {
		conditions = append(conditions, "s.satker_id = ?")
		args = append(args, filter.SatkerID)
	}
	if filter.TahunAnggaran > 0 {
		conditions = append(conditions, "s.tahun_anggaran = ?")
		args = append(args, filter.TahunAnggaran)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// FindAll returns the filtered rincian with their answers, newest SPM first.
func (r *RincianRepository) FindAll(ctx context.Context, filter models.RincianFilter) ([]models.RincianDetail, error) {
	where, args := rincianWhere(filter)
	return r.selectDetails(ctx, rincianDetailSelect+where+" ORDER BY s.tanggal DESC, r.id ASC", args...)
}

// FindForReconciliation returns every rincian of a satker and budget year
// ordered by SPM number, kode akun and uraian.
func (r *RincianRepository) FindForReconciliation(ctx context.Context, tahunAnggaran, satkerID int) ([]models.RincianDetail, error) {
	where, args := rincianWhere(models.RincianFilter{SatkerID: satkerID, TahunAnggaran: tahunAnggaran})
	query := rincianDetailSelect + where + " ORDER BY s.nomor_spm ASC, ka.kode ASC, r.uraian ASC"
	return r.selectDetails(ctx, query, args...)
}

// FindBySpmIDs returns the rincian of the given SPMs with their answers.
func (r *RincianRepository) FindBySpmIDs(ctx context.Context, spmIDs []int) ([]models.RincianDetail, error) {
	if len(spmIDs) == 0 {
		return []models.RincianDetail{}, nil
	}

	query, args, err := sqlx.In(rincianDetailSelect+" WHERE r.spm_id IN (?) ORDER BY r.spm_id ASC, r.id ASC", spmIDs)
	if err != nil {
		return nil, err
	}
	return r.selectDetails(ctx, r.db.Rebind(query), args...)
}

func (r *RincianRepository) FindByID(ctx context.Context, id int) (*models.RincianDetail, error) {
	details, err := r.selectDetails(ctx, rincianDetailSelect+" WHERE r.id = ? LIMIT 1", id)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

func (r *RincianRepository) selectDetails(ctx context.Context, query string, args ...interface{}) ([]models.RincianDetail, error) {
	details := []models.RincianDetail{}
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, err
	}
	if err := r.attachJawaban(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *RincianRepository) attachJawaban(ctx context.Context, details []models.RincianDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]int, len(details))
	for i, d := range details {
		ids[i] = d.ID
	}

	query, args, err := sqlx.In(
		"SELECT id, rincian_spm_id, nama, tipe FROM jawaban_flags WHERE rincian_spm_id IN (?) ORDER BY id ASC",
		ids,
	)
	if err != nil {
		return err
	}

	var answers []models.JawabanFlag
	if err := r.db.SelectContext(ctx, &answers, r.db.Rebind(query), args...); err != nil {
		return err
	}

	byRincian := make(map[int][]models.JawabanFlag, len(details))
	for _, a := range answers {
		byRincian[a.RincianSpmID] = append(byRincian[a.RincianSpmID], a)
	}
	for i := range details {
		details[i].JawabanFlags = byRincian[details[i].ID]
		if details[i].JawabanFlags == nil {
			details[i].JawabanFlags = []models.JawabanFlag{}
		}
	}
	return nil
}
