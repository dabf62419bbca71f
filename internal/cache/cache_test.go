package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainboard/lib-secrets-go/internal/testlogger"
	"github.com/trainboard/lib-secrets-go/model"
)

func TestManager_StoreAndGet(t *testing.T) {
	logger := testlogger.New()

	m, err := New(logger)
	require.NoError(t, err)
	defer m.Close()

	_, found := m.Get("0123456789abcdef:true")
	assert.False(t, found)

	report := model.Report{
		Valid:       false,
		Strict:      true,
		Fingerprint: "0123456789abcdef",
		Issues:      []model.Issue{{Field: "ssid", Code: "SEC-0009", Message: "placeholder"}},
	}
	m.Store("0123456789abcdef:true", report)

	got, found := m.Get("0123456789abcdef:true")
	require.True(t, found)
	assert.Equal(t, report, got)

	assert.True(t, logger.Contains(testlogger.Debug, "Stored validation report for 0123456789ab"))
	assert.True(t, logger.Contains(testlogger.Debug, "Validation report cached", "issues: 1"))
}

func TestManager_HoldsManyReports(t *testing.T) {
	m, err := New(testlogger.New())
	require.NoError(t, err)
	defer m.Close()

	for _, key := range []string{"a", "b", "c", "d", "e"} {
		m.Store(key, model.Report{Fingerprint: key, Valid: true})
	}

	for _, key := range []string{"a", "b", "c", "d", "e"} {
		got, found := m.Get(key)
		require.True(t, found, key)
		assert.Equal(t, key, got.Fingerprint)
	}
}
