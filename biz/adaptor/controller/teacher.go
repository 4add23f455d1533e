package controller

import (
	"context"
	"note-board/biz/adaptor"
	"note-board/biz/application/dto/board"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SignUp 教师注册
func SignUp(ctx context.Context, c *app.RequestContext) {
	var req board.SignUpReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AuthService.SignUp(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SignIn 教师登录, 成功后下发会话cookie
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req board.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AuthService.SignIn(ctx, &req)
	if err == nil {
		c.SetCookie(consts.SessionCookie, resp.AccessToken, int(config.GetConfig().Auth.AccessExpire),
			"/", "", protocol.CookieSameSiteNoneMode, true, true)
	}
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SignOut 教师登出, 注销服务端会话并清除cookie
func SignOut(ctx context.Context, c *app.RequestContext) {
	var req board.SignOutReq
	p := provider.Get()
	resp, err := p.AuthService.SignOut(ctx, &req)
	if err == nil {
		c.SetCookie(consts.SessionCookie, "", -1,
			"/", "", protocol.CookieSameSiteNoneMode, true, true)
	}
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetTeacherInfo 当前登录教师信息
func GetTeacherInfo(ctx context.Context, c *app.RequestContext) {
	var req board.GetTeacherInfoReq
	p := provider.Get()
	resp, err := p.AuthService.GetTeacherInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateClassroom 创建课堂
func CreateClassroom(ctx context.Context, c *app.RequestContext) {
	var req board.CreateClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassroomService.CreateClassroom(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListClassrooms 课堂列表
func ListClassrooms(ctx context.Context, c *app.RequestContext) {
	var req board.ListClassroomsReq
	p := provider.Get()
	resp, err := p.ClassroomService.ListClassrooms(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ResolveClassroom 按课堂码查询/加入, 学生入口
func ResolveClassroom(ctx context.Context, c *app.RequestContext) {
	var req board.ResolveClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassroomService.ResolveByCode(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteClassroom 删除课堂
func DeleteClassroom(ctx context.Context, c *app.RequestContext) {
	var req board.DeleteClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassroomService.DeleteClassroom(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
