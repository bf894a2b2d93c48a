package fingerprint_test

import (
	"testing"

	"github.com/on-the-ground/select_ive_go/internal/fingerprint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum_DeterministicPerContent(t *testing.T) {
	type doc struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	a, err := fingerprint.Sum(doc{ID: "q-1", Count: 3})
	require.NoError(t, err)
	b, err := fingerprint.Sum(doc{ID: "q-1", Count: 3})
	require.NoError(t, err)
	c, err := fingerprint.Sum(doc{ID: "q-1", Count: 4})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestSum_UnencodableValue(t *testing.T) {
	_, err := fingerprint.Sum(func() {})
	assert.Error(t, err)
}

func TestMustSum_PanicsOnUnencodable(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on unencodable value")
		}
	}()
	fingerprint.MustSum(make(chan int))
}
