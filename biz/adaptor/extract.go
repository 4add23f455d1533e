package adaptor

import (
	"context"
	"errors"
	"note-board/biz/application/dto/basic"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/session"
	"note-board/biz/infrastructure/util/log"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractTeacherMeta 解析请求中的教师会话
// cookie(或Authorization头)里是签名后的会话id, 会话本体在服务端存储,
// 注销后即使token未过期也无法通过校验
func ExtractTeacherMeta(ctx context.Context) (meta *basic.TeacherMeta) {
	meta = new(basic.TeacherMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract teacher meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}

	tokenString := string(c.Cookie(consts.SessionCookie))
	if tokenString == "" {
		tokenString = string(c.GetHeader("Authorization"))
	}
	if tokenString == "" {
		return
	}

	sid, err := ParseSessionToken(tokenString)
	if err != nil {
		return
	}

	store := session.GetStore()
	if store == nil {
		err = errors.New("session store not initialized")
		return
	}
	sess, err := store.Get(ctx, sid)
	if err != nil {
		return
	}

	meta.UserId = sess.TeacherID
	meta.SessionId = sid
	meta.Username = sess.Username
	return
}

// GenerateSessionToken 生成承载会话id的jwt
func GenerateSessionToken(sid, userId, username string) (string, int64, error) {
	secret := []byte(config.GetConfig().Auth.SecretKey)
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["sessionId"] = sid
	claims["userId"] = userId
	claims["username"] = username
	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = claims
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}

// ParseSessionToken 校验签名并取出会话id
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sid, ok := claims["sessionId"].(string)
	if !ok || sid == "" {
		return "", errors.New("session id missing")
	}
	return sid, nil
}
