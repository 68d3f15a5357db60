package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"spm-backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestPlanRincianChanges(t *testing.T) {
	tests := []struct {
		name        string
		existing    []int
		incoming    []models.Rincian
		wantRemoved []int
		wantIDs     []int
	}{
		{
			name:        "keeps matching ids and removes the rest",
			existing:    []int{1, 2, 3},
			incoming:    []models.Rincian{{ID: 1}, {ID: 3}, {ID: 0}},
			wantRemoved: []int{2},
			wantIDs:     []int{1, 3, 0},
		},
		{
			name:        "foreign id becomes an insert",
			existing:    []int{1},
			incoming:    []models.Rincian{{ID: 99}},
			wantRemoved: []int{1},
			wantIDs:     []int{0},
		},
		{
			name:        "repeated id is only updated once",
			existing:    []int{5},
			incoming:    []models.Rincian{{ID: 5}, {ID: 5}},
			wantRemoved: []int{},
			wantIDs:     []int{5, 0},
		},
		{
			name:        "all new",
			existing:    nil,
			incoming:    []models.Rincian{{}, {}},
			wantRemoved: []int{},
			wantIDs:     []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed, planned := planRincianChanges(tt.existing, tt.incoming)
			assert.Equal(t, tt.wantRemoved, removed)

			ids := make([]int, len(planned))
			for i, r := range planned {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPlanRincianChanges_DoesNotMutateInput(t *testing.T) {
	incoming := []models.Rincian{{ID: 42}}
	planRincianChanges([]int{1}, incoming)
	assert.Equal(t, 42, incoming[0].ID)
}

func TestSpmWhere(t *testing.T) {
	where, args := spmWhere(models.SpmFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = spmWhere(models.SpmFilter{TahunAnggaran: 2025, SatkerID: 3})
	assert.Equal(t, "WHERE s.tahun_anggaran = ? AND s.satker_id = ?", where)
	assert.Equal(t, []interface{}{2025, 3}, args)
}

func TestNomorPrefixWhere(t *testing.T) {
	where, args := nomorPrefixWhere([]string{"SPM/TEST/", "SPM_X%"})
	assert.Equal(t, "nomor_spm LIKE ? OR nomor_spm LIKE ?", where)
	assert.Equal(t, []interface{}{"SPM/TEST/%", `SPM\_X\%%`}, args)
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))
	assert.ErrorIs(t, translateError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translateError(fmt.Errorf("wrapped: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})), ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, translateError(other))
}

type stubResult struct {
	id  int64
	err error
}

func (r stubResult) LastInsertId() (int64, error) { return r.id, r.err }
func (r stubResult) RowsAffected() (int64, error) { return 1, nil }

func TestInsertedID(t *testing.T) {
	id, err := insertedID(stubResult{id: 42})
	assert.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = insertedID(stubResult{err: errors.New("driver does not support LastInsertId")})
	assert.Error(t, err)
}
