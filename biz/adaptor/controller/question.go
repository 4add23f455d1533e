package controller

import (
	"context"
	"note-board/biz/adaptor"
	"note-board/biz/application/dto/board"
	"note-board/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateQuestion 学生提交问题
func CreateQuestion(ctx context.Context, c *app.RequestContext) {
	var req board.CreateQuestionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.QuestionService.CreateQuestion(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListQuestions 课堂问题列表
func ListQuestions(ctx context.Context, c *app.RequestContext) {
	var req board.ListQuestionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.QuestionService.ListQuestions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateQuestionStatus 教师流转问题状态
func UpdateQuestionStatus(ctx context.Context, c *app.RequestContext) {
	var req board.UpdateQuestionStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.QuestionService.UpdateStatus(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AnswerQuestion 教师回答问题
func AnswerQuestion(ctx context.Context, c *app.RequestContext) {
	var req board.AnswerQuestionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.QuestionService.AnswerQuestion(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteQuestion 教师删除问题
func DeleteQuestion(ctx context.Context, c *app.RequestContext) {
	var req board.DeleteQuestionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.QuestionService.DeleteQuestion(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ApplySignedUrl 申请附件加签上传url
func ApplySignedUrl(ctx context.Context, c *app.RequestContext) {
	var req board.ApplySignedUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertz.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.StsService.ApplySignedUrl(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
