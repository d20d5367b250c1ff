package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()
	m.LikesSent.Inc()
	m.QuotaCacheReads.WithLabelValues("hit").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LikesSent))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QuotaCacheReads.WithLabelValues("hit")))

	families, err := m.Registry.Gather()
	assert.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "matchmaking_likes_sent_total")
}

func TestNew_IndependentRegistries(t *testing.T) {
	// two instances must not panic on duplicate registration
	a, b := New(), New()
	a.MatchesFormed.Inc()
	assert.Equal(t, float64(0), testutil.ToFloat64(b.MatchesFormed))
}
