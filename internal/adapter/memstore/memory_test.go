package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/domain"
)

func TestMemoryHistory_NewestFirst(t *testing.T) {
	s := NewMemoryHistory()
	for _, q := range []string{"space", "heist", "romance"} {
		require.NoError(t, s.Record(domain.HistoryEntry{ID: q, Query: q}))
	}

	all, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "romance", all[0].Query)
	assert.Equal(t, "space", all[2].Query)

	two, err := s.List(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"romance", "heist"}, []string{two[0].Query, two[1].Query})
}

func TestMemoryHistory_Concurrent(t *testing.T) {
	s := NewMemoryHistory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Record(domain.HistoryEntry{Query: "q"})
			s.List(1)
		}()
	}
	wg.Wait()

	all, _ := s.List(0)
	assert.Len(t, all, 50)
}
