package service

import (
	"context"
	"note-board/biz/adaptor"
	"note-board/biz/application/dto/board"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/repository/question"
	"note-board/biz/infrastructure/util"
	"note-board/biz/infrastructure/util/log"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type IQuestionService interface {
	CreateQuestion(ctx context.Context, req *board.CreateQuestionReq) (*board.CreateQuestionResp, error)
	ListQuestions(ctx context.Context, req *board.ListQuestionsReq) (*board.ListQuestionsResp, error)
	UpdateStatus(ctx context.Context, req *board.UpdateQuestionStatusReq) (*board.UpdateQuestionStatusResp, error)
	AnswerQuestion(ctx context.Context, req *board.AnswerQuestionReq) (*board.AnswerQuestionResp, error)
	DeleteQuestion(ctx context.Context, req *board.DeleteQuestionReq) (*board.Response, error)
}

type QuestionService struct {
	QuestionMapper question.Mapper
}

var QuestionServiceSet = wire.NewSet(
	wire.Struct(new(QuestionService), "*"),
	wire.Bind(new(IQuestionService), new(*QuestionService)),
)

// CreateQuestion 学生提交问题, 无需登录
func (s *QuestionService) CreateQuestion(ctx context.Context, req *board.CreateQuestionReq) (*board.CreateQuestionResp, error) {
	if req.ClassroomId == "" || strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Author) == "" {
		return nil, consts.ErrInvalidParams
	}

	color := req.GetColor()
	if color == "" {
		color = consts.DefaultColor
	}
	category := req.GetCategory()
	if category == "" {
		category = consts.DefaultCategory
	}

	now := time.Now()
	q := &question.Question{
		ClassroomID: req.ClassroomId,
		Question:    req.Question,
		Author:      req.Author,
		Status:      consts.StatusUnanswered,
		Color:       color,
		Category:    category,
		CreateTime:  now,
		UpdateTime:  now,
	}
	if err := s.QuestionMapper.Insert(ctx, q); err != nil {
		log.Error("提交问题失败: %v", err)
		return nil, consts.ErrCreateQuestion
	}

	return &board.CreateQuestionResp{
		Question: toQuestionInfo(q),
	}, nil
}

// ListQuestions 课堂问题列表, 条件全部可选且取交集, 按提交时间倒序
func (s *QuestionService) ListQuestions(ctx context.Context, req *board.ListQuestionsReq) (*board.ListQuestionsResp, error) {
	if req.ClassroomId == "" {
		return nil, consts.ErrInvalidParams
	}

	filter := &question.FindFilter{
		Status: req.Status,
		Author: req.Author,
	}
	if req.From != nil {
		t, err := parseTimeParam(*req.From)
		if err != nil {
			return nil, consts.ErrInvalidParams
		}
		filter.From = &t
	}
	if req.To != nil {
		t, err := parseTimeParam(*req.To)
		if err != nil {
			return nil, consts.ErrInvalidParams
		}
		filter.To = &t
	}

	questions, total, err := s.QuestionMapper.FindByClassroom(ctx, req.ClassroomId, filter)
	if err != nil {
		log.Error("获取问题列表失败: %v", err)
		return nil, consts.ErrGetQuestionList
	}

	infos := lo.Map(questions, func(q *question.Question, _ int) *board.QuestionInfo {
		return toQuestionInfo(q)
	})

	return &board.ListQuestionsResp{
		Questions: infos,
		Total:     total,
	}, nil
}

// UpdateStatus 教师流转问题状态, 三种状态两两可达
func (s *QuestionService) UpdateStatus(ctx context.Context, req *board.UpdateQuestionStatusReq) (*board.UpdateQuestionStatusResp, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if !validStatus(req.Status) {
		return nil, consts.ErrInvalidStatus
	}

	if _, err := s.QuestionMapper.FindOne(ctx, req.Id); err != nil {
		return nil, consts.ErrNotFound
	}
	q, err := s.QuestionMapper.UpdateStatus(ctx, req.Id, req.Status)
	if err != nil {
		log.Error("更新问题状态失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &board.UpdateQuestionStatusResp{
		Question: toQuestionInfo(q),
	}, nil
}

// AnswerQuestion 教师回答问题, 附带答复正文与附件, 状态置为answered
func (s *QuestionService) AnswerQuestion(ctx context.Context, req *board.AnswerQuestionReq) (*board.AnswerQuestionResp, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.QuestionMapper.FindOne(ctx, req.Id); err != nil {
		return nil, consts.ErrNotFound
	}

	answer := &question.Answer{
		Text:      req.Text,
		TeacherID: meta.GetUserId(),
		Timestamp: time.Now(),
	}
	if err := copier.Copy(&answer.Attachments, req.Attachments); err != nil {
		return nil, consts.ErrInvalidParams
	}

	q, err := s.QuestionMapper.UpdateAnswer(ctx, req.Id, answer)
	if err != nil {
		log.Error("回答问题失败: %v", err)
		return nil, consts.ErrAnswerQuestion
	}

	return &board.AnswerQuestionResp{
		Question: toQuestionInfo(q),
	}, nil
}

// DeleteQuestion 教师删除问题, 物理删除
func (s *QuestionService) DeleteQuestion(ctx context.Context, req *board.DeleteQuestionReq) (*board.Response, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.QuestionMapper.FindOne(ctx, req.Id); err != nil {
		return nil, consts.ErrNotFound
	}
	if err := s.QuestionMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除问题失败: %v", err)
		return nil, consts.ErrDeleteQuestion
	}

	return util.Succeed("删除成功")
}

func validStatus(status string) bool {
	switch status {
	case consts.StatusUnanswered, consts.StatusAnswered, consts.StatusImportant:
		return true
	}
	return false
}

// parseTimeParam 支持RFC3339和unix秒两种入参
func parseTimeParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	sec, err := cast.ToInt64E(v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, 0), nil
}

func toQuestionInfo(q *question.Question) *board.QuestionInfo {
	info := &board.QuestionInfo{
		Id:          q.ID.Hex(),
		ClassroomId: q.ClassroomID,
		Question:    q.Question,
		Author:      q.Author,
		Status:      q.Status,
		Color:       q.Color,
		Category:    q.Category,
		CreateTime:  q.CreateTime.Unix(),
	}
	if q.Answer != nil {
		info.Answer = &board.AnswerInfo{
			Text:      q.Answer.Text,
			TeacherId: q.Answer.TeacherID,
			Timestamp: q.Answer.Timestamp.Unix(),
		}
		_ = copier.Copy(&info.Answer.Attachments, q.Answer.Attachments)
	}
	return info
}
