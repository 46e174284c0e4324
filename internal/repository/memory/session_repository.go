package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"guruvela-be/internal/metrics"
	"guruvela-be/pkg/dialogue"
)

// SessionRepository keeps dialogue sessions in process memory. Reading a
// session renews its expiry.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration

	// mu serializes inserts so each stored session is counted once.
	mu sync.Mutex
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(string, interface{}) {
		metrics.ActiveSessions.Dec()
	})
	return &SessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Create starts a new session with a fresh id.
func (r *SessionRepository) Create(language string) *dialogue.Session {
	sess := dialogue.NewSession(uuid.NewString(), language)
	r.Save(sess)
	return sess
}

func (r *SessionRepository) Save(session *dialogue.Session) {
	if r.cache.Replace(session.ID, session, cache.DefaultExpiration) == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache.Replace(session.ID, session, cache.DefaultExpiration) == nil {
		return
	}
	r.add(session)
}

func (r *SessionRepository) Get(sessionID string) (*dialogue.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		sess := x.(*dialogue.Session)
		_ = r.cache.Replace(sessionID, sess, cache.DefaultExpiration)
		return sess, true
	}
	return nil, false
}

// GetOrCreate returns the stored session or starts one under sessionID.
// An empty id always gets a generated one.
func (r *SessionRepository) GetOrCreate(sessionID, language string) (*dialogue.Session, bool) {
	if sessionID == "" {
		return r.Create(language), false
	}
	if sess, ok := r.Get(sessionID); ok {
		return sess, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dialogue.Session), true
	}
	sess := dialogue.NewSession(sessionID, language)
	r.add(sess)
	return sess, false
}

// add stores a session under a key with no live item. An expired item the
// janitor has not collected yet is evicted first, since Add would overwrite
// it without calling OnEvicted. Callers hold mu.
func (r *SessionRepository) add(session *dialogue.Session) {
	r.cache.Delete(session.ID)
	if err := r.cache.Add(session.ID, session, cache.DefaultExpiration); err == nil {
		metrics.ActiveSessions.Inc()
	}
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
