package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/domain/surveytaking"
	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleSession() *surveytaking.Session {
	year := 2
	q := uuid.New()
	f := uuid.New()
	return &surveytaking.Session{
		ID:         uuid.New(),
		State:      surveytaking.StateRatingQuestions,
		SurveyID:   uuid.New(),
		Department: "CSE",
		Questions:  []survey.QuestionSnapshot{{ID: q, Text: "Is the pace right?"}},
		Respondent: surveytaking.Respondent{ID: uuid.New(), Name: "Ravi", RollNo: "21CS01", Year: &year, Department: "CSE"},
		Info:       surveytaking.RespondentInfo{RollNo: "21CS01", Year: &year, Class: "CSE"},
		Candidates: []surveytaking.Candidate{{ID: f, Name: "Alice", Subject: "Algorithms"}},
		Selected:   []surveytaking.Candidate{{ID: f, Name: "Alice", Subject: "Algorithms"}},
		Ratings:    map[uuid.UUID]map[uuid.UUID]int{q: {f: 7}},
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
}

// exerciseStore runs the same round trip against any implementation
func exerciseStore(t *testing.T, store surveytaking.SessionStore) {
	ctx := context.Background()
	session := sampleSession()

	_, err := store.Get(ctx, session.ID)
	assert.True(t, shared.IsNotFound(err))

	require.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.State, got.State)
	assert.Equal(t, session.Respondent, got.Respondent)
	assert.Equal(t, session.Selected, got.Selected)
	assert.Equal(t, session.Ratings, got.Ratings)
	assert.True(t, session.CreatedAt.Equal(got.CreatedAt))

	// mutating the loaded copy must not leak into the store
	got.QuestionIndex = 9
	again, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Zero(t, again.QuestionIndex)

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Get(ctx, session.ID)
	assert.True(t, shared.IsNotFound(err))
	assert.NoError(t, store.Delete(ctx, session.ID))
}

func TestInMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewInMemorySessionStore(time.Hour)
	defer store.Close()
	exerciseStore(t, store)
}

func TestInMemorySessionStore_Expiry(t *testing.T) {
	store := NewInMemorySessionStore(time.Minute)
	defer store.Close()

	now := time.Now()
	store.now = func() time.Time { return now }

	session := sampleSession()
	require.NoError(t, store.Put(context.Background(), session))

	now = now.Add(59 * time.Second)
	_, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = store.Get(context.Background(), session.ID)
	assert.True(t, shared.IsNotFound(err))

	store.sweep()
	assert.Zero(t, store.Len())
}

func TestInMemorySessionStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemorySessionStore(time.Minute)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestSessionStoreFactory_Memory(t *testing.T) {
	f := NewSessionStoreFactory(config.RedisConfig{}, config.SessionConfig{Backend: "memory", TTL: time.Minute}, WithLogger(zap.NewNop()))
	store, err := f.CreateStore()
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &InMemorySessionStore{}, store)
}

func TestSessionStoreFactory_RedisUnavailable(t *testing.T) {
	// nothing listens on port 1
	redisCfg := config.RedisConfig{Host: "127.0.0.1", Port: 1}

	_, err := NewSessionStoreFactory(redisCfg, config.SessionConfig{Backend: "redis", TTL: time.Minute}).CreateStore()
	assert.Error(t, err)

	store, err := NewSessionStoreFactory(redisCfg, config.SessionConfig{Backend: "redis", TTL: time.Minute, Fallback: true}).CreateStore()
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &InMemorySessionStore{}, store)
}

func TestRedisSessionStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("FFB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FFB_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	store := NewRedisSessionStoreWithClient(client, "ffb:test:"+uuid.NewString()+":", time.Minute)
	defer store.Close()

	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)

	session := sampleSession()
	require.NoError(t, store.Put(context.Background(), session))
	ttl, err := client.TTL(context.Background(), store.key(session.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
	_ = store.Delete(context.Background(), session.ID)
}
