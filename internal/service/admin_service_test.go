package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"spm-backend/internal/models"
	"spm-backend/internal/service"
	"spm-backend/internal/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	satkers   *mocks.MockSatkerUpserter
	kodeAkuns *mocks.MockKodeAkunUpserter
	flags     *mocks.MockFlagUpserter
	spms      *mocks.MockSpmCleaner
	svc       *service.AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	ctrl := gomock.NewController(t)
	f := &adminFixture{
		satkers:   mocks.NewMockSatkerUpserter(ctrl),
		kodeAkuns: mocks.NewMockKodeAkunUpserter(ctrl),
		flags:     mocks.NewMockFlagUpserter(ctrl),
		spms:      mocks.NewMockSpmCleaner(ctrl),
	}
	f.svc = service.NewAdminService(f.satkers, f.kodeAkuns, f.flags, f.spms, service.NewExcelService(), testLogger())
	return f
}

func TestAdminService_SeedSatkers(t *testing.T) {
	f := newAdminFixture(t)
	f.satkers.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(len(service.DefaultSatkers))

	satkers := append([]models.Satker(nil), service.DefaultSatkers...)
	assert.NoError(t, f.svc.SeedSatkers(context.Background(), satkers))
}

func TestAdminService_SeedFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.csv")
	content := "Kode Akun,Jenis,SPD,Kuitansi\n" +
		"524111,Belanja Perjalanan Dinas,ya,ya/tidak\n" +
		"521211,Belanja Bahan,tidak,salah\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f := newAdminFixture(t)
	f.kodeAkuns.EXPECT().Upsert(gomock.Any(), "524111", "Belanja Perjalanan Dinas").Return(40, nil)
	f.kodeAkuns.EXPECT().Upsert(gomock.Any(), "521211", "Belanja Bahan").Return(41, nil)

	var seeded []models.Flag
	f.flags.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, flag *models.Flag) error {
		seeded = append(seeded, *flag)
		return nil
	}).Times(2)

	result, err := f.svc.SeedFlags(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.KodeAkunCount)
	assert.Equal(t, 2, result.FlagCount)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, "Kuitansi", result.ValidationErrors[0].Field)
	assert.Equal(t, []models.Flag{
		{Nama: "SPD", Tipe: "YES", KodeAkunID: 40},
		{Nama: "Kuitansi", Tipe: "YES_STRIKETHROUGH", KodeAkunID: 40},
	}, seeded)
}

func TestAdminService_CleanupDummySpms(t *testing.T) {
	ctx := context.Background()

	t.Run("dry run only counts", func(t *testing.T) {
		f := newAdminFixture(t)
		f.spms.EXPECT().CountByNomorPrefixes(gomock.Any(), service.DummySpmPrefixes).Return(int64(4), nil)

		n, err := f.svc.CleanupDummySpms(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("deletes", func(t *testing.T) {
		f := newAdminFixture(t)
		f.spms.EXPECT().DeleteByNomorPrefixes(gomock.Any(), service.DummySpmPrefixes).Return(int64(4), nil)

		n, err := f.svc.CleanupDummySpms(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}
