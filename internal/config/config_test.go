package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trackhist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, 0.2, s.PtMin)
	assert.Equal(t, 10.0, s.PtMax)
	assert.Equal(t, 0.8, s.EtaCut)
	assert.Equal(t, 10.0, s.VtxZCut)
	assert.Equal(t, 160, s.VtxZBins)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
ptMin: 0.5
ptMax: 5
etaCut: 0.9
ptBins: [0.5, 1, 2, 5]
workers: 3
redis:
  addr: localhost:6379
  ttl: 24h
output:
  dir: out
  plots: false
`)
	s, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.5, s.PtMin)
	assert.Equal(t, 5.0, s.PtMax)
	assert.Equal(t, 0.9, s.EtaCut)
	assert.Equal(t, 10.0, s.VtxZCut, "unset keys keep defaults")
	assert.Equal(t, []float64{0.5, 1, 2, 5}, s.PtBins)
	assert.Equal(t, 3, s.Workers)
	assert.Equal(t, "localhost:6379", s.Redis.Addr)
	assert.Equal(t, 24*time.Hour, s.Redis.TTL)
	assert.Equal(t, "out", s.Output.Dir)
	assert.False(t, s.Output.Plots)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, "ptMax: 20\n")
	s, err := Load(path, []string{"ptMax=8", "vtxZCut=7.5", "redis.addr=cache:6379", "ptBins=[0.2,1,8]"})
	require.NoError(t, err)

	assert.Equal(t, 8.0, s.PtMax)
	assert.Equal(t, 7.5, s.VtxZCut)
	assert.Equal(t, "cache:6379", s.Redis.Addr)
	assert.Equal(t, []float64{0.2, 1, 8}, s.PtBins)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("", []string{"ptMin"})
	assert.ErrorIs(t, err, ErrBadOverride)

	_, err = Load("", []string{"ptMin=5", "ptMax=1"})
	assert.ErrorIs(t, err, domain.ErrInvalidAxisBounds)

	_, err = Load("", []string{"unknownKey=1"})
	assert.Error(t, err)

	_, err = Load("", []string{"workers=0"})
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	s := Default()
	out, err := s.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "ptMin: 0.2")
	assert.Contains(t, string(out), "workers: 1")
}
