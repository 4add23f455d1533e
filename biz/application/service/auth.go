package service

import (
	"context"
	"errors"
	"fmt"
	"note-board/biz/adaptor"
	"note-board/biz/application/dto/board"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/repository/teacher"
	"note-board/biz/infrastructure/session"
	"note-board/biz/infrastructure/util"
	"note-board/biz/infrastructure/util/log"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	SignUp(ctx context.Context, req *board.SignUpReq) (*board.SignUpResp, error)
	SignIn(ctx context.Context, req *board.SignInReq) (*board.SignInResp, error)
	SignOut(ctx context.Context, req *board.SignOutReq) (*board.Response, error)
	GetTeacherInfo(ctx context.Context, req *board.GetTeacherInfoReq) (*board.GetTeacherInfoResp, error)
}

type AuthService struct {
	TeacherMapper    teacher.Mapper
	SessionStore     session.Store
	ClassroomService IClassroomService
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// SignUp 教师注册, 用户名唯一, 注册时自动建一个默认课堂
func (s *AuthService) SignUp(ctx context.Context, req *board.SignUpReq) (*board.SignUpResp, error) {
	if req.Username == "" || req.Password == "" {
		return nil, consts.ErrInvalidParams
	}

	existing, err := s.TeacherMapper.FindOneByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return nil, consts.ErrRepeatedSignUp
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), consts.BcryptCost)
	if err != nil {
		return nil, consts.ErrSignUp
	}

	now := time.Now()
	t := &teacher.Teacher{
		Username:   req.Username,
		Password:   string(hash),
		Classrooms: []string{},
		CreateTime: now,
		UpdateTime: now,
	}
	err = s.TeacherMapper.Insert(ctx, t)
	if err != nil {
		log.Error("注册失败: %v", err)
		return nil, consts.ErrSignUp
	}

	// 默认课堂创建失败不阻断注册, 只记录错误
	err = s.ClassroomService.CreateFirstClassroom(ctx, t.ID.Hex(), fmt.Sprintf("%s%s", req.Username, consts.DefaultClassSuffix))
	if err != nil {
		log.Error("创建默认课堂失败: %v", err)
	}

	return &board.SignUpResp{
		Id:       t.ID.Hex(),
		Username: t.Username,
	}, nil
}

// SignIn 登录, 校验通过后建立服务端会话并签发cookie token
func (s *AuthService) SignIn(ctx context.Context, req *board.SignInReq) (*board.SignInResp, error) {
	if req.Username == "" || req.Password == "" {
		return nil, consts.ErrInvalidParams
	}

	t, err := s.TeacherMapper.FindOneByUsername(ctx, req.Username)
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(req.Password)) != nil {
		return nil, consts.ErrSignIn
	}

	sid := uuid.NewString()
	err = s.SessionStore.Set(ctx, sid, &session.Session{
		TeacherID:  t.ID.Hex(),
		Username:   t.Username,
		CreateTime: time.Now(),
	})
	if err != nil {
		log.Error("创建会话失败: %v", err)
		return nil, consts.ErrSignIn
	}

	accessToken, accessExpire, err := adaptor.GenerateSessionToken(sid, t.ID.Hex(), t.Username)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	return &board.SignInResp{
		Id:           t.ID.Hex(),
		Username:     t.Username,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

// SignOut 注销会话
func (s *AuthService) SignOut(ctx context.Context, req *board.SignOutReq) (*board.Response, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	err := s.SessionStore.Delete(ctx, meta.GetSessionId())
	if err != nil {
		log.Error("删除会话失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return util.Succeed("登出成功")
}

// GetTeacherInfo 当前登录教师
func (s *AuthService) GetTeacherInfo(ctx context.Context, req *board.GetTeacherInfoReq) (*board.GetTeacherInfoResp, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	t, err := s.TeacherMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &board.GetTeacherInfoResp{
		Id:             t.ID.Hex(),
		Username:       t.Username,
		ClassroomCount: int64(len(t.Classrooms)),
	}, nil
}
