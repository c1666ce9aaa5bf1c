package ayanamsa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/kundli-api/internal/domain"
)

func TestValue_LahiriAtJ2000(t *testing.T) {
	svc := New()
	v, err := svc.Value(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), domain.AyanamsaLahiri)
	require.NoError(t, err)
	assert.InDelta(t, 23.85306, v, 1e-6)
}

func TestValue_GrowsWithTime(t *testing.T) {
	svc := New()
	v2000, err := svc.Value(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), domain.AyanamsaLahiri)
	require.NoError(t, err)
	v2024, err := svc.Value(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), domain.AyanamsaLahiri)
	require.NoError(t, err)

	// Около 50.29″ в год: за 24 года примерно 20′
	assert.InDelta(t, 24*50.29/3600, v2024-v2000, 0.01)
}

func TestValue_SystemsOrdering(t *testing.T) {
	svc := New()
	now := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	lahiri, err := svc.Value(now, domain.AyanamsaLahiri)
	require.NoError(t, err)
	raman, err := svc.Value(now, domain.AyanamsaRaman)
	require.NoError(t, err)
	kp, err := svc.Value(now, domain.AyanamsaKrishnamurti)
	require.NoError(t, err)

	// Раман меньше Лахири примерно на 1.44°, KP чуть меньше Лахири
	assert.Less(t, raman, lahiri)
	assert.Less(t, kp, lahiri)
	assert.Greater(t, kp, raman)
}

func TestValue_UnsupportedSystem(t *testing.T) {
	svc := New()
	_, err := svc.Value(time.Now(), domain.AyanamsaSystem("fagan"))
	require.ErrorIs(t, err, domain.ErrUnsupportedConfiguration)
}

func TestSidereal_Normalization(t *testing.T) {
	svc := New()
	instant := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	// Тропическая долгота меньше аянамши: результат заворачивается в [0, 360)
	sidereal, err := svc.Sidereal(10.0, instant, domain.AyanamsaLahiri)
	require.NoError(t, err)
	assert.InDelta(t, 10.0-23.85306+360, sidereal, 1e-9)
	assert.GreaterOrEqual(t, sidereal, 0.0)
	assert.Less(t, sidereal, 360.0)
}
