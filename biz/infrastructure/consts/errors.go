package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrSignUp            = NewErrno(codes.Internal, errors.New("注册失败，请重试"))
	ErrSignIn            = NewErrno(codes.Unauthenticated, errors.New("用户名或密码错误"))
	ErrRepeatedSignUp    = NewErrno(codes.AlreadyExists, errors.New("该用户名已注册"))
	ErrCreateClassroom   = NewErrno(codes.Internal, errors.New("创建课堂失败"))
	ErrGetClassroomList  = NewErrno(codes.Internal, errors.New("获取课堂列表失败"))
	ErrJoinClassroom     = NewErrno(codes.Internal, errors.New("加入课堂失败"))
	ErrDeleteClassroom   = NewErrno(codes.Internal, errors.New("删除课堂失败"))
	ErrCreateQuestion    = NewErrno(codes.Internal, errors.New("提交问题失败"))
	ErrGetQuestionList   = NewErrno(codes.Internal, errors.New("获取问题列表失败"))
	ErrDeleteQuestion    = NewErrno(codes.Internal, errors.New("删除问题失败"))
	ErrAnswerQuestion    = NewErrno(codes.Internal, errors.New("回答问题失败"))
	ErrInvalidStatus     = NewErrno(codes.InvalidArgument, errors.New("无效的问题状态"))
	ErrEmptyName         = NewErrno(codes.InvalidArgument, errors.New("课堂名称不能为空"))
	ErrSignedUrl         = NewErrno(codes.Internal, errors.New("生成加签url失败"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("调用接口失败，请重试"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Internal, errors.New("更新失败"))
)
