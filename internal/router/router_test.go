package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"spm-backend/internal/config"
	"spm-backend/internal/handler"
	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/service/mocks"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	app         *fiber.App
	cfg         *config.Config
	userRepo    *mocks.MockUserRepository
	satkerRepo  *mocks.MockSatkerRepository
	spmRepo     *mocks.MockSpmRepository
	rincianRepo *mocks.MockRincianRepository
	flagRepo    *mocks.MockFlagRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	ctrl := gomock.NewController(t)
	f := &apiFixture{
		cfg: &config.Config{
			JWTSecret:       "router-test-secret",
			JWTAccessExpire: time.Hour,
			UploadMaxSize:   1 << 20,
			UploadPath:      t.TempDir(),
			ExportPath:      t.TempDir(),
		},
		userRepo:    mocks.NewMockUserRepository(ctrl),
		satkerRepo:  mocks.NewMockSatkerRepository(ctrl),
		spmRepo:     mocks.NewMockSpmRepository(ctrl),
		rincianRepo: mocks.NewMockRincianRepository(ctrl),
		flagRepo:    mocks.NewMockFlagRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	scorer := service.NewCompletenessScorer(service.CompletenessRuleV2)
	counter := service.NewRequiredFlagCounter(f.flagRepo, nil, logger)
	excel := service.NewExcelService()
	kodeAkunRepo := mocks.NewMockKodeAkunRepository(ctrl)

	h := &Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(f.userRepo, f.cfg, logger)),
		User:      handler.NewUserHandler(service.NewUserService(f.userRepo, logger)),
		Reference: handler.NewReferenceHandler(service.NewReferenceService(f.satkerRepo, kodeAkunRepo, f.flagRepo, counter, logger)),
		Spm:       handler.NewSpmHandler(service.NewSpmService(f.spmRepo, f.rincianRepo, f.satkerRepo, counter, scorer, excel, logger), f.cfg),
		Sakti: handler.NewSaktiHandler(
			service.NewSaktiService(f.rincianRepo, service.NewSaktiReconciler(service.DefaultSaktiColumns), excel, nil, nil, logger),
			excel,
			f.cfg,
		),
		Rincian: handler.NewRincianHandler(service.NewRincianService(f.rincianRepo, counter, scorer)),
		Report:  handler.NewReportHandler(service.NewReportService(f.satkerRepo, f.spmRepo, f.rincianRepo, counter, scorer)),
	}

	f.app = fiber.New()
	RegisterAPIRoutes(f.app.Group("/api/v1"), h, f.cfg)
	return f
}

func (f *apiFixture) token(t *testing.T, user models.User) string {
	token, err := utils.GenerateAccessToken(user, f.cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func (f *apiFixture) do(t *testing.T, req *http.Request, token string) (*http.Response, utils.Response) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	var body utils.Response
	if resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func satkerID(v int) *int { return &v }

var (
	provUser   = models.User{ID: 1, Name: "Prov", Email: "prov@bps.go.id", Role: models.RoleOpProv}
	satkerUser = models.User{ID: 2, Name: "Satker", Email: "satker@bps.go.id", Role: models.RoleOpSatker, SatkerID: satkerID(3)}
	viewerUser = models.User{ID: 3, Name: "Viewer", Email: "viewer@bps.go.id", Role: models.RoleViewer}
)

func TestAPI_Authentication(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("missing token", func(t *testing.T) {
		resp, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/spm", nil), "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, body.Success)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		bad, err := utils.GenerateAccessToken(provUser, "other-secret", time.Hour)
		require.NoError(t, err)
		resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/spm", nil), bad)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("login", func(t *testing.T) {
		hash, err := utils.HashPassword("rahasia123")
		require.NoError(t, err)
		stored := provUser
		stored.Password = hash
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), "prov@bps.go.id").Return(&stored, nil)

		resp, body := f.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "prov@bps.go.id", Password: "rahasia123"}), "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, body.Success)
	})

	t.Run("login with a wrong password", func(t *testing.T) {
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), "prov@bps.go.id").Return(&models.User{Password: "not-a-hash"}, nil)

		resp, _ := f.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "prov@bps.go.id", Password: "x"}), "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAPI_AdminRoutes(t *testing.T) {
	f := newAPIFixture(t)

	for _, target := range []string{"/api/v1/users", "/api/v1/reports/satker-performance?tahun=2024"} {
		resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, target, nil), f.token(t, satkerUser))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, target)
	}

	resp, _ := f.do(t, jsonRequest(http.MethodPatch, "/api/v1/spm/1/status", models.SpmStatusRequest{Status: "ACCEPTED"}), f.token(t, viewerUser))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/reports/satker-performance", nil), f.token(t, provUser))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Spm(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("list is paginated when a limit is given", func(t *testing.T) {
		f.spmRepo.EXPECT().
			FindAll(gomock.Any(), models.SpmFilter{TahunAnggaran: 2024, SatkerID: 3, Page: 2, Limit: 10}).
			Return([]models.SpmListItem{}, int64(12), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/spm?tahun=2024&page=2&limit=10", nil)
		req.Header.Set("Authorization", "Bearer "+f.token(t, satkerUser))
		resp, err := f.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body utils.PaginatedResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.Pagination.LastPage)
		assert.Equal(t, 11, body.Pagination.From)
	})

	t.Run("viewer cannot create", func(t *testing.T) {
		resp, _ := f.do(t, jsonRequest(http.MethodPost, "/api/v1/spm", models.SpmRequest{}), f.token(t, viewerUser))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("empty rincian is rejected", func(t *testing.T) {
		req := models.SpmRequest{NomorSpm: "SPM/1", TahunAnggaran: 2024, Tanggal: "2024-01-02", SatkerID: 3}
		resp, _ := f.do(t, jsonRequest(http.MethodPost, "/api/v1/spm", req), f.token(t, provUser))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate nomor is a conflict", func(t *testing.T) {
		f.spmRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		req := models.SpmRequest{
			NomorSpm: "SPM/1", TahunAnggaran: 2024, Tanggal: "2024-01-02", SatkerID: 3,
			Rincian: []models.RincianRequest{{KodeAkunID: 1, Jumlah: 100, Uraian: "ATK"}},
		}
		resp, _ := f.do(t, jsonRequest(http.MethodPost, "/api/v1/spm", req), f.token(t, provUser))
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("accepted spm cannot be updated", func(t *testing.T) {
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&models.Spm{ID: 5, SatkerID: 3, Status: models.SpmStatusAccepted}, nil)

		resp, _ := f.do(t, jsonRequest(http.MethodPut, "/api/v1/spm/5", models.SpmRequest{}), f.token(t, provUser))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("accepted spm cannot be deleted", func(t *testing.T) {
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 6).Return(&models.Spm{ID: 6, SatkerID: 3, Status: models.SpmStatusAccepted}, nil)

		resp, body := f.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/spm/6", nil), f.token(t, provUser))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.False(t, body.Success)
	})

	t.Run("unknown spm", func(t *testing.T) {
		f.spmRepo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, repository.ErrNotFound)

		resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/spm/404", nil), f.token(t, provUser))
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/spm/abc", nil), f.token(t, provUser))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("export is not shadowed by /:id", func(t *testing.T) {
		f.spmRepo.EXPECT().
			FindAll(gomock.Any(), models.SpmFilter{TahunAnggaran: 2024, Page: 1}).
			Return([]models.SpmListItem{}, int64(0), nil)

		resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/spm/export?tahun=2024", nil), f.token(t, provUser))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotEmpty(t, body)

		left, err := os.ReadDir(f.cfg.ExportPath)
		require.NoError(t, err)
		assert.Empty(t, left)
	})
}

func TestAPI_ValidateReport(t *testing.T) {
	f := newAPIFixture(t)

	row := make([]interface{}, 26)
	row[7] = "524111"
	detail := make([]interface{}, 26)
	detail[13] = "000001. Uang Harian"
	detail[25] = float64(2303000)

	t.Run("json rows", func(t *testing.T) {
		f.rincianRepo.EXPECT().FindForReconciliation(gomock.Any(), 2024, 3).Return([]models.RincianDetail{
			{Rincian: models.Rincian{Uraian: "Uang Harian", Jumlah: 2500000}, KodeAkunKode: "524111"},
		}, nil)

		payload := map[string]interface{}{"data": [][]interface{}{row, detail}}
		req := jsonRequest(http.MethodPost, "/api/v1/spm/validate-report?tahun=2024", payload)
		req.Header.Set("Authorization", "Bearer "+f.token(t, satkerUser))
		resp, err := f.app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data []models.ComparisonResult `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, models.ComparisonMismatch, body.Data[0].Status)
		assert.Equal(t, int64(197000), *body.Data[0].Difference)
	})

	t.Run("admin without satker", func(t *testing.T) {
		payload := map[string]interface{}{"data": [][]interface{}{row}}
		resp, _ := f.do(t, jsonRequest(http.MethodPost, "/api/v1/spm/validate-report?tahun=2024", payload), f.token(t, provUser))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing data", func(t *testing.T) {
		resp, _ := f.do(t, jsonRequest(http.MethodPost, "/api/v1/spm/validate-report?tahun=2024&satker_id=3", map[string]interface{}{}), f.token(t, provUser))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("upload rejects non xlsx files", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("file", "report.csv")
		require.NoError(t, err)
		_, _ = part.Write([]byte("a,b"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/spm/validate-report/upload?tahun=2024&satker_id=3", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := f.do(t, req, f.token(t, provUser))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("jobs are unavailable without redis", func(t *testing.T) {
		resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/spm/validate-report/jobs/abc", nil), f.token(t, provUser))
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestAPI_Rincian(t *testing.T) {
	f := newAPIFixture(t)

	f.rincianRepo.EXPECT().FindByID(gomock.Any(), 8).Return(&models.RincianDetail{
		Rincian:  models.Rincian{ID: 8, KodeAkunID: 2},
		SatkerID: 9,
	}, nil)

	resp, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/rincian/8", nil), f.token(t, satkerUser))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListAPIRoutes(t *testing.T) {
	routes := ListAPIRoutes(&config.Config{JWTSecret: "x"})

	var paths []string
	for _, r := range routes {
		paths = append(paths, r.Method+" "+r.Path)
	}
	assert.Contains(t, paths, "POST /api/v1/auth/login")
	assert.Contains(t, paths, "GET /api/v1/spm/export")
	assert.Contains(t, paths, "PATCH /api/v1/spm/:id/status")
	assert.Contains(t, paths, "GET /api/v1/reports/satker-performance")
}
