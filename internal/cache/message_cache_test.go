package cache

import (
	"context"
	"testing"
	"time"

	"skillswap/internal/microservices/http-api/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestNilClientIsNoop(t *testing.T) {
	c := NewRedisMessageCache(nil, time.Minute)
	ctx := context.Background()

	msgs, hit, err := c.Get(ctx)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, msgs)

	assert.NoError(t, c.Set(ctx, []models.PlatformMessage{{ID: 1, Title: "t"}}))
	assert.NoError(t, c.Invalidate(ctx))
	assert.NoError(t, c.Close())

	var nilCache *RedisMessageCache
	_, hit, err = nilCache.Get(ctx)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-url", "")
	assert.Error(t, err)
}

// MessageCacheRedisSuite runs against a local redis and skips without one.
type MessageCacheRedisSuite struct {
	suite.Suite
	client *redis.Client
	cache  *RedisMessageCache
}

func (s *MessageCacheRedisSuite) SetupSuite() {
	s.client = redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		s.T().Skip("Redis not available, skipping cache tests")
	}
	s.cache = NewRedisMessageCache(s.client, time.Minute)
}

func (s *MessageCacheRedisSuite) SetupTest() {
	if s.cache != nil {
		s.client.Del(context.Background(), platformMessagesKey)
	}
}

func (s *MessageCacheRedisSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *MessageCacheRedisSuite) TestSetGetInvalidate() {
	ctx := context.Background()
	want := []models.PlatformMessage{
		{ID: 2, Title: "maintenance", Body: "tonight", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: 1, Title: "welcome", Body: "hello", CreatedAt: time.Now().UTC().Add(-time.Hour).Truncate(time.Second)},
	}

	_, hit, err := s.cache.Get(ctx)
	s.Require().NoError(err)
	s.False(hit)

	s.Require().NoError(s.cache.Set(ctx, want))
	got, hit, err := s.cache.Get(ctx)
	s.Require().NoError(err)
	s.True(hit)
	s.Equal(want, got)

	ttl := s.client.TTL(ctx, platformMessagesKey).Val()
	s.Greater(ttl, time.Duration(0))

	s.Require().NoError(s.cache.Invalidate(ctx))
	_, hit, err = s.cache.Get(ctx)
	s.Require().NoError(err)
	s.False(hit)
}

func (s *MessageCacheRedisSuite) TestEmptyListIsAHit() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, nil))

	got, hit, err := s.cache.Get(ctx)
	s.Require().NoError(err)
	s.True(hit)
	s.Empty(got)
}

func TestMessageCacheRedisSuite(t *testing.T) {
	suite.Run(t, new(MessageCacheRedisSuite))
}
