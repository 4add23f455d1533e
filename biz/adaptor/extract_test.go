package adaptor

import (
	"context"
	"errors"
	"testing"
	"time"

	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/session"

	"github.com/cloudwego/hertz/pkg/app"
)

type memStore struct {
	sessions map[string]*session.Session
}

func (s *memStore) Get(ctx context.Context, sid string) (*session.Session, error) {
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, errors.New("session not found")
	}
	return sess, nil
}

func (s *memStore) Set(ctx context.Context, sid string, sess *session.Session) error {
	s.sessions[sid] = sess
	return nil
}

func (s *memStore) Delete(ctx context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func setupAuthConfig() {
	config.SetConfig(&config.Config{
		Auth: config.Auth{
			SecretKey:    "unit-test-secret",
			AccessExpire: 3600,
		},
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	setupAuthConfig()

	token, expire, err := GenerateSessionToken("sid-1", "uid-1", "wang")
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}
	if expire <= time.Now().Unix() {
		t.Errorf("过期时间应在未来, 实际%d", expire)
	}

	sid, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("解析token失败: %v", err)
	}
	if sid != "sid-1" {
		t.Errorf("会话id期望sid-1, 实际%q", sid)
	}
}

func TestParseSessionTokenTampered(t *testing.T) {
	setupAuthConfig()

	token, _, err := GenerateSessionToken("sid-1", "uid-1", "wang")
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	if _, err = ParseSessionToken(token + "x"); err == nil {
		t.Error("篡改签名的token应解析失败")
	}
	if _, err = ParseSessionToken("not-a-jwt"); err == nil {
		t.Error("非jwt串应解析失败")
	}

	// 换密钥后旧token失效
	config.SetConfig(&config.Config{Auth: config.Auth{SecretKey: "rotated", AccessExpire: 3600}})
	if _, err = ParseSessionToken(token); err == nil {
		t.Error("密钥轮换后旧token应解析失败")
	}
}

func TestExtractTeacherMeta(t *testing.T) {
	setupAuthConfig()
	store := &memStore{sessions: make(map[string]*session.Session)}
	session.SetStore(store)

	_ = store.Set(context.Background(), "sid-1", &session.Session{
		TeacherID:  "uid-1",
		Username:   "wang",
		CreateTime: time.Now(),
	})
	token, _, err := GenerateSessionToken("sid-1", "uid-1", "wang")
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	c := app.NewContext(0)
	c.Request.Header.SetCookie(consts.SessionCookie, token)
	ctx := InjectContext(context.Background(), c)

	meta := ExtractTeacherMeta(ctx)
	if meta.GetUserId() != "uid-1" || meta.GetUsername() != "wang" || meta.GetSessionId() != "sid-1" {
		t.Fatalf("会话解析异常: %+v", meta)
	}

	// 会话删除后同一个token不再可用
	_ = store.Delete(context.Background(), "sid-1")
	meta = ExtractTeacherMeta(ctx)
	if meta.GetUserId() != "" {
		t.Error("会话删除后应解析为空")
	}
}

func TestExtractTeacherMetaAuthorizationHeader(t *testing.T) {
	setupAuthConfig()
	store := &memStore{sessions: make(map[string]*session.Session)}
	session.SetStore(store)

	_ = store.Set(context.Background(), "sid-2", &session.Session{TeacherID: "uid-2", Username: "li"})
	token, _, err := GenerateSessionToken("sid-2", "uid-2", "li")
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	// 无cookie时回退到Authorization头
	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", token)
	ctx := InjectContext(context.Background(), c)

	meta := ExtractTeacherMeta(ctx)
	if meta.GetUserId() != "uid-2" {
		t.Fatalf("Authorization头解析失败: %+v", meta)
	}
}

func TestExtractTeacherMetaAnonymous(t *testing.T) {
	// 没有hertz上下文
	meta := ExtractTeacherMeta(context.Background())
	if meta.GetUserId() != "" || meta.GetSessionId() != "" {
		t.Fatalf("匿名请求应解析为空: %+v", meta)
	}

	// 有上下文但无cookie
	c := app.NewContext(0)
	meta = ExtractTeacherMeta(InjectContext(context.Background(), c))
	if meta.GetUserId() != "" {
		t.Fatalf("无cookie请求应解析为空: %+v", meta)
	}
}
