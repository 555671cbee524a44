package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"amdaops-http-service/internal/infrastructure/config"
)

// facetKeyPrefix namespaces the cached phrase facets per site prefix.
const facetKeyPrefix = "amdaops:phrase_facets:"

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Ping(ctx context.Context) error
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheFacets(prefix string, facets *PhraseFacets, expiration time.Duration) error
	GetFacets(prefix string) (*PhraseFacets, error)
	InvalidateFacets() error
	Close() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// NewRedisServiceWithClient wraps an existing client
func NewRedisServiceWithClient(client *redis.Client) InterfaceRedisService {
	return &RedisService{Client: client, Ctx: context.Background()}
}

// 1 Ping checks the connection
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// 2 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 3 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 4 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 5 CacheFacets caches the category/hotword facets of a site
func (s *RedisService) CacheFacets(prefix string, facets *PhraseFacets, expiration time.Duration) error {
	return s.Set(facetKeyPrefix+prefix, facets, expiration)
}

// 6 GetFacets returns cached facets, or redis.Nil when absent
func (s *RedisService) GetFacets(prefix string) (*PhraseFacets, error) {
	var facets PhraseFacets
	if err := s.Get(facetKeyPrefix+prefix, &facets); err != nil {
		return nil, err
	}
	return &facets, nil
}

// 7 InvalidateFacets drops every cached facet set
func (s *RedisService) InvalidateFacets() error {
	iter := s.Client.Scan(s.Ctx, 0, facetKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(s.Ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(s.Ctx, keys...).Err()
}

// 8 Close closes the client
func (s *RedisService) Close() error {
	return s.Client.Close()
}
