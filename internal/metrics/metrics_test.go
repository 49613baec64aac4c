package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_AuthOperation(t *testing.T) {
	m := New()

	m.AuthOperation(OpLogin, "success")
	m.AuthOperation(OpLogin, "success")
	m.AuthOperation(OpLogin, "auth")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthOperations.WithLabelValues(OpLogin, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthOperations.WithLabelValues(OpLogin, "auth")))
}

func TestMetrics_RefreshTokenReused(t *testing.T) {
	m := New()

	m.RefreshTokenReused()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokenReuse))
}

func TestMetrics_HTTPRequest(t *testing.T) {
	m := New()

	m.HTTPRequest("POST", "/login", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/login", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AuthOperation(OpLogout, "success")
		m.RefreshTokenReused()
		m.HTTPRequest("GET", "/posts", 200, time.Millisecond)
	})
}

func TestMetrics_RegistryGathers(t *testing.T) {
	m := New()
	m.RefreshTokenReused()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "postboard_refresh_token_reuse_total")
}
