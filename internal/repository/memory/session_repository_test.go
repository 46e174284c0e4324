package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guruvela-be/internal/metrics"
)

func TestCreateAndGet(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	sess := repo.Create("hi-en")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "hi-en", sess.Language)

	got, ok := repo.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestGetOrCreateUnknownIDStartsFresh(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	sess, existed := repo.GetOrCreate("client-chosen-id", "fr")
	assert.False(t, existed)
	assert.Equal(t, "client-chosen-id", sess.ID)
	assert.Equal(t, "en", sess.Language)

	again, existed := repo.GetOrCreate("client-chosen-id", "en")
	assert.True(t, existed)
	assert.Same(t, sess, again)
}

func TestGetOrCreateEmptyIDGeneratesOne(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	sess, existed := repo.GetOrCreate("", "te-en")
	assert.False(t, existed)
	assert.NotEmpty(t, sess.ID)
}

func TestGetOrCreateConcurrentSameID(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	var wg sync.WaitGroup
	ids := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, _ := repo.GetOrCreate("shared", "en")
			ids <- sess.ID
		}()
	}
	wg.Wait()
	close(ids)

	first, _ := repo.Get("shared")
	for id := range ids {
		assert.Equal(t, first.ID, id)
	}
	assert.Equal(t, 1, repo.Count())
}

func TestDeleteAndExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)

	sess := repo.Create("en")
	repo.Delete(sess.ID)
	_, ok := repo.Get(sess.ID)
	assert.False(t, ok)

	other := repo.Create("en")
	time.Sleep(40 * time.Millisecond)
	_, ok = repo.Get(other.ID)
	assert.False(t, ok)
}

func TestActiveSessionsGaugeSurvivesResaveAfterExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	before := testutil.ToFloat64(metrics.ActiveSessions)

	sess := repo.Create("en")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSessions))

	time.Sleep(40 * time.Millisecond)
	repo.Save(sess)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSessions))

	repo.Save(sess)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSessions))

	repo.Delete(sess.ID)
	assert.Equal(t, before, testutil.ToFloat64(metrics.ActiveSessions))
}

func TestActiveSessionsGaugeCountsConcurrentCreateOnce(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	before := testutil.ToFloat64(metrics.ActiveSessions)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.GetOrCreate("gauge-shared", "en")
		}()
	}
	wg.Wait()

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSessions))
	repo.Delete("gauge-shared")
	assert.Equal(t, before, testutil.ToFloat64(metrics.ActiveSessions))
}
