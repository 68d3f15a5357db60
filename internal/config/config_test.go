package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SAKTI_REALISASI_COLUMN", "")
	t.Setenv("COMPLETENESS_RULE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.SaktiKodeAkunColumn)
	assert.Equal(t, 13, cfg.SaktiUraianColumn)
	assert.Equal(t, 25, cfg.SaktiRealisasiColumn)
	assert.Equal(t, "v2", cfg.CompletenessRule)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessExpire)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SAKTI_REALISASI_COLUMN", "22")
	t.Setenv("COMPLETENESS_RULE", "v1")
	t.Setenv("FLAG_COUNT_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 22, cfg.SaktiRealisasiColumn)
	assert.Equal(t, "v1", cfg.CompletenessRule)
	assert.Equal(t, 30*time.Second, cfg.FlagCountCacheTTL)
}

func TestLoad_NegativeColumnRejected(t *testing.T) {
	t.Setenv("SAKTI_URAIAN_COLUMN", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DBUsername: "u", DBPassword: "p", DBHost: "h", DBPort: "3306", DBDatabase: "spm"}
	assert.Equal(t, "u:p@tcp(h:3306)/spm?parseTime=true&loc=Local", cfg.GetDSN())
}
