package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLBoard = 10 * time.Minute // 게시판 설정 (변경 빈도 낮음)
)

// 캐시 키 접두사
const (
	PrefixBoard = "board:"
)

// ErrMiss 캐시에 값이 없음
var ErrMiss = errors.New("cache miss")

// ErrUnavailable Redis 미연결
var ErrUnavailable = errors.New("redis not available")

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 게시판 캐시
	GetBoard(ctx context.Context, boardID uint64, dest interface{}) error
	SetBoard(ctx context.Context, boardID uint64, data interface{}) error
	InvalidateBoard(ctx context.Context, boardID uint64) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrUnavailable
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회, 없으면 ErrMiss
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrUnavailable
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete 캐시 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// 게시판 캐시
// ========================================

func (c *redisCache) boardKey(boardID uint64) string {
	return fmt.Sprintf("%s%d", PrefixBoard, boardID)
}

func (c *redisCache) GetBoard(ctx context.Context, boardID uint64, dest interface{}) error {
	return c.Get(ctx, c.boardKey(boardID), dest)
}

func (c *redisCache) SetBoard(ctx context.Context, boardID uint64, data interface{}) error {
	return c.Set(ctx, c.boardKey(boardID), data, TTLBoard)
}

func (c *redisCache) InvalidateBoard(ctx context.Context, boardID uint64) error {
	return c.Delete(ctx, c.boardKey(boardID))
}
