package session

import (
	"context"
	"encoding/json"
	"fmt"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/redis"
	"time"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const sessionCachePrefix = "session:teacher"

// Session 服务端会话记录, cookie里只有签名后的会话id
type Session struct {
	TeacherID  string    `json:"teacherId"`
	Username   string    `json:"username"`
	CreateTime time.Time `json:"createTime"`
}

type Store interface {
	Get(ctx context.Context, sid string) (*Session, error)
	Set(ctx context.Context, sid string, s *Session) error
	Delete(ctx context.Context, sid string) error
}

type RedisStore struct {
	rds    *gozero_redis.Redis
	expire int64
}

var store Store

func NewRedisStore(config *config.Config) *RedisStore {
	s := &RedisStore{
		rds:    redis.GetRedis(config),
		expire: config.Auth.AccessExpire,
	}
	store = s
	return s
}

// GetStore 供适配层读取会话, 在NewRedisStore之后可用
func GetStore() Store {
	return store
}

// SetStore 注入会话存储, 测试用
func SetStore(s Store) {
	store = s
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Session, error) {
	cached, err := s.rds.GetCtx(ctx, s.buildCacheKey(sid))
	if err != nil {
		return nil, err
	}
	if cached == "" {
		return nil, fmt.Errorf("session not found")
	}

	var sess Session
	if err := json.Unmarshal([]byte(cached), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}
	return s.rds.SetexCtx(ctx, s.buildCacheKey(sid), string(data), int(s.expire))
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	_, err := s.rds.DelCtx(ctx, s.buildCacheKey(sid))
	return err
}

func (s *RedisStore) buildCacheKey(sid string) string {
	return fmt.Sprintf("%s:%s", sessionCachePrefix, sid)
}
