package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func intPtr(v int) *int { return &v }

var (
	opProv   = models.CurrentUser{ID: 1, Name: "Prov", Role: models.RoleOpProv}
	opSatker = models.CurrentUser{ID: 2, Name: "Satker", Role: models.RoleOpSatker, SatkerID: intPtr(3)}
	viewer   = models.CurrentUser{ID: 3, Name: "Viewer", Role: models.RoleViewer}
)

type spmFixture struct {
	spmRepo     *mocks.MockSpmRepository
	rincianRepo *mocks.MockRincianRepository
	satkerRepo  *mocks.MockSatkerRepository
	flagRepo    *mocks.MockFlagRepository
	svc         *service.SpmService
}

func newSpmFixture(t *testing.T) *spmFixture {
	ctrl := gomock.NewController(t)
	f := &spmFixture{
		spmRepo:     mocks.NewMockSpmRepository(ctrl),
		rincianRepo: mocks.NewMockRincianRepository(ctrl),
		satkerRepo:  mocks.NewMockSatkerRepository(ctrl),
		flagRepo:    mocks.NewMockFlagRepository(ctrl),
	}
	logger := testLogger()
	counter := service.NewRequiredFlagCounter(f.flagRepo, nil, logger)
	scorer := service.NewCompletenessScorer(service.CompletenessRuleV2)
	f.svc = service.NewSpmService(f.spmRepo, f.rincianRepo, f.satkerRepo, counter, scorer, service.NewExcelService(), logger)
	return f
}

func validSpmRequest() models.SpmRequest {
	return models.SpmRequest{
		NomorSpm:      " SPM/0001/2024 ",
		TahunAnggaran: 2024,
		Tanggal:       "2024-03-15",
		SatkerID:      3,
		Rincian: []models.RincianRequest{
			{
				KodeAkunID:  10,
				KodeProgram: "054.01.WA",
				Jumlah:      1500000,
				Uraian:      "Uang Harian",
				JawabanFlags: []models.JawabanFlagRequest{
					{Nama: "SPD", Tipe: "IYA"},
					{Nama: "Kuitansi", Tipe: "YES_STRIKETHROUGH"},
				},
			},
			{KodeAkunID: 11, Jumlah: 250000, Uraian: "ATK"},
		},
	}
}

func TestSpmService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("viewer is forbidden", func(t *testing.T) {
		f := newSpmFixture(t)
		_, err := f.svc.Create(ctx, viewer, validSpmRequest())
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("op_satker cannot file for another satker", func(t *testing.T) {
		f := newSpmFixture(t)
		req := validSpmRequest()
		req.SatkerID = 4
		_, err := f.svc.Create(ctx, opSatker, req)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("empty rincian", func(t *testing.T) {
		f := newSpmFixture(t)
		req := validSpmRequest()
		req.Rincian = nil
		_, err := f.svc.Create(ctx, opProv, req)
		assert.ErrorIs(t, err, service.ErrEmptyRincian)
	})

	t.Run("unknown answer kind", func(t *testing.T) {
		f := newSpmFixture(t)
		req := validSpmRequest()
		req.Rincian[0].JawabanFlags[0].Tipe = "MAYBE"
		_, err := f.svc.Create(ctx, opProv, req)
		assert.ErrorIs(t, err, service.ErrInvalidSpm)
	})

	t.Run("bad tanggal", func(t *testing.T) {
		f := newSpmFixture(t)
		req := validSpmRequest()
		req.Tanggal = "kemarin"
		_, err := f.svc.Create(ctx, opProv, req)
		assert.ErrorIs(t, err, service.ErrInvalidSpm)
	})

	t.Run("stores a pending spm with a computed total", func(t *testing.T) {
		f := newSpmFixture(t)
		req := validSpmRequest()
		req.SatkerID = 0

		f.spmRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spm *models.Spm, rincian []models.Rincian) error {
				assert.Equal(t, "SPM/0001/2024", spm.NomorSpm)
				assert.Equal(t, models.SpmStatusPending, spm.Status)
				assert.Equal(t, int64(1750000), spm.TotalAnggaran)
				assert.Equal(t, 3, spm.SatkerID)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), spm.Tanggal)
				require.Len(t, rincian, 2)
				assert.Equal(t, models.AnswerYes, rincian[0].JawabanFlags[0].Tipe)
				assert.Equal(t, models.AnswerYesStrikethrough, rincian[0].JawabanFlags[1].Tipe)
				spm.ID = 42
				return nil
			})

		spm, err := f.svc.Create(ctx, opSatker, req)
		require.NoError(t, err)
		assert.Equal(t, 42, spm.ID)
	})

	t.Run("duplicate nomor", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		_, err := f.svc.Create(ctx, opProv, validSpmRequest())
		assert.ErrorIs(t, err, service.ErrDuplicateNomorSpm)
	})
}

func TestSpmService_Update(t *testing.T) {
	ctx := context.Background()
	comment := "SPD belum ada"

	t.Run("rejected spm goes back to pending", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&models.Spm{
			ID: 7, SatkerID: 3, Status: models.SpmStatusRejected, RejectionComment: &comment,
		}, nil)
		f.spmRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spm *models.Spm, _ []models.Rincian) error {
				assert.Equal(t, 7, spm.ID)
				assert.Equal(t, models.SpmStatusPending, spm.Status)
				assert.Nil(t, spm.RejectionComment)
				return nil
			})

		spm, err := f.svc.Update(ctx, opSatker, 7, validSpmRequest())
		require.NoError(t, err)
		assert.Equal(t, models.SpmStatusPending, spm.Status)
	})

	t.Run("accepted spm is locked", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&models.Spm{ID: 7, SatkerID: 3, Status: models.SpmStatusAccepted}, nil)

		_, err := f.svc.Update(ctx, opProv, 7, validSpmRequest())
		assert.ErrorIs(t, err, service.ErrSpmLocked)
	})

	t.Run("op_satker cannot touch another satker", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&models.Spm{ID: 7, SatkerID: 5, Status: models.SpmStatusPending}, nil)

		_, err := f.svc.Update(ctx, opSatker, 7, validSpmRequest())
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("missing spm", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, repository.ErrNotFound)

		_, err := f.svc.Update(ctx, opProv, 7, validSpmRequest())
		assert.ErrorIs(t, err, service.ErrSpmNotFound)
	})

	t.Run("empty rincian", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&models.Spm{ID: 7, SatkerID: 3, Status: models.SpmStatusPending}, nil)
		req := validSpmRequest()
		req.Rincian = []models.RincianRequest{}

		_, err := f.svc.Update(ctx, opProv, 7, req)
		assert.ErrorIs(t, err, service.ErrEmptyRincian)
	})
}

func TestSpmService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted spm is locked", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 9).Return(&models.Spm{ID: 9, SatkerID: 3, Status: models.SpmStatusAccepted}, nil)
		assert.ErrorIs(t, f.svc.Delete(ctx, opProv, 9), service.ErrSpmLocked)
	})

	t.Run("pending spm is removed", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 9).Return(&models.Spm{ID: 9, SatkerID: 3, Status: models.SpmStatusPending}, nil)
		f.spmRepo.EXPECT().Delete(gomock.Any(), 9).Return(nil)
		assert.NoError(t, f.svc.Delete(ctx, opSatker, 9))
	})
}

func TestSpmService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("only administrators review", func(t *testing.T) {
		f := newSpmFixture(t)
		_, err := f.svc.UpdateStatus(ctx, opSatker, 1, models.SpmStatusRequest{Status: "ACCEPTED"})
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("pending is not a review outcome", func(t *testing.T) {
		f := newSpmFixture(t)
		_, err := f.svc.UpdateStatus(ctx, opProv, 1, models.SpmStatusRequest{Status: "PENDING"})
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})

	t.Run("reject keeps the comment", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&models.Spm{ID: 1, Status: models.SpmStatusPending}, nil)
		f.spmRepo.EXPECT().
			UpdateStatus(gomock.Any(), 1, models.SpmStatusRejected, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, _ models.SpmStatus, comment *string) error {
				require.NotNil(t, comment)
				assert.Equal(t, "Kuitansi kurang", *comment)
				return nil
			})

		spm, err := f.svc.UpdateStatus(ctx, opProv, 1, models.SpmStatusRequest{Status: "DITOLAK", Comment: " Kuitansi kurang "})
		require.NoError(t, err)
		assert.Equal(t, models.SpmStatusRejected, spm.Status)
	})

	t.Run("accept drops the comment", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&models.Spm{ID: 1, Status: models.SpmStatusPending}, nil)
		f.spmRepo.EXPECT().UpdateStatus(gomock.Any(), 1, models.SpmStatusAccepted, (*string)(nil)).Return(nil)

		spm, err := f.svc.UpdateStatus(ctx, opProv, 1, models.SpmStatusRequest{Status: "ACCEPTED", Comment: "ok"})
		require.NoError(t, err)
		assert.Nil(t, spm.RejectionComment)
	})
}

func TestSpmService_List(t *testing.T) {
	ctx := context.Background()
	f := newSpmFixture(t)

	f.spmRepo.EXPECT().
		FindAll(gomock.Any(), models.SpmFilter{TahunAnggaran: 2024, SatkerID: 3, Page: 1, Limit: 25}).
		Return([]models.SpmListItem{{Spm: models.Spm{ID: 1}}, {Spm: models.Spm{ID: 2}}}, int64(2), nil)
	f.rincianRepo.EXPECT().FindBySpmIDs(gomock.Any(), []int{1, 2}).Return([]models.RincianDetail{
		{Rincian: models.Rincian{ID: 1, SpmID: 1, KodeAkunID: 10, JawabanFlags: []models.JawabanFlag{{Tipe: models.AnswerYes}, {Tipe: models.AnswerNo}}}},
		{Rincian: models.Rincian{ID: 2, SpmID: 1, KodeAkunID: 11}},
	}, nil)
	f.flagRepo.EXPECT().CountByKodeAkun(gomock.Any(), []int{10, 11}).Return(map[int]int{10: 2, 11: 0}, nil)

	// op_satker is narrowed to its own satker whatever it asks for.
	items, total, err := f.svc.List(ctx, opSatker, models.SpmFilter{TahunAnggaran: 2024, SatkerID: 9, Page: 1, Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)

	assert.Equal(t, 2, items[0].RincianCount)
	assert.Equal(t, 75, items[0].CompletenessPercentage) // (50 + 100) / 2
	assert.Equal(t, 0, items[1].RincianCount)
	assert.Equal(t, 100, items[1].CompletenessPercentage)
}

func TestSpmService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("op_satker cannot read another satker", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&models.Spm{ID: 5, SatkerID: 8}, nil)

		_, err := f.svc.Get(ctx, opSatker, 5)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("loads satker and scored rincian", func(t *testing.T) {
		f := newSpmFixture(t)
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&models.Spm{ID: 5, SatkerID: 3}, nil)
		f.satkerRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&models.Satker{ID: 3, Nama: "BPS Kab. Gorontalo"}, nil)
		f.rincianRepo.EXPECT().FindBySpmIDs(gomock.Any(), []int{5}).Return([]models.RincianDetail{
			{
				Rincian:      models.Rincian{ID: 1, SpmID: 5, KodeAkunID: 10, JawabanFlags: []models.JawabanFlag{{Tipe: models.AnswerYes}}},
				KodeAkunKode: "524111",
			},
		}, nil)
		f.flagRepo.EXPECT().CountByKodeAkun(gomock.Any(), []int{10}).Return(map[int]int{10: 3}, nil)

		detail, err := f.svc.Get(ctx, viewer, 5)
		require.NoError(t, err)
		assert.Equal(t, "BPS Kab. Gorontalo", detail.Satker.Nama)
		require.Len(t, detail.Rincian, 1)
		assert.Equal(t, 33, detail.Rincian[0].PersentaseKelengkapan)
		assert.Equal(t, "524111", detail.Rincian[0].KodeAkun.Kode)
	})
}
