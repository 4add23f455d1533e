package service

import (
	"context"
	"errors"
	"note-board/biz/adaptor"
	"note-board/biz/application/dto/board"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/repository/classroom"
	"note-board/biz/infrastructure/repository/question"
	"note-board/biz/infrastructure/repository/teacher"
	"note-board/biz/infrastructure/util"
	"note-board/biz/infrastructure/util/log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/samber/lo"
)

type IClassroomService interface {
	CreateClassroom(ctx context.Context, req *board.CreateClassroomReq) (*board.CreateClassroomResp, error)
	CreateFirstClassroom(ctx context.Context, teacherID, name string) error
	ListClassrooms(ctx context.Context, req *board.ListClassroomsReq) (*board.ListClassroomsResp, error)
	ResolveByCode(ctx context.Context, req *board.ResolveClassroomReq) (*board.ResolveClassroomResp, error)
	DeleteClassroom(ctx context.Context, req *board.DeleteClassroomReq) (*board.Response, error)
}

type ClassroomService struct {
	ClassroomMapper classroom.Mapper
	TeacherMapper   teacher.Mapper
	QuestionMapper  question.Mapper
}

var ClassroomServiceSet = wire.NewSet(
	wire.Struct(new(ClassroomService), "*"),
	wire.Bind(new(IClassroomService), new(*ClassroomService)),
)

// CreateClassroom 创建课堂
func (s *ClassroomService) CreateClassroom(ctx context.Context, req *board.CreateClassroomReq) (*board.CreateClassroomResp, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, consts.ErrEmptyName
	}

	c, err := s.createClassroom(ctx, meta.GetUserId(), req.Name)
	if err != nil {
		return nil, err
	}

	_, total, err := s.ClassroomMapper.FindByTeacher(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取课堂总数失败: %v", err)
		total = 0
	}

	return &board.CreateClassroomResp{
		ClassroomId: c.ID.Hex(),
		Code:        c.Code,
		Name:        c.Name,
		Total:       total,
	}, nil
}

// CreateFirstClassroom 注册时自动创建默认课堂
func (s *ClassroomService) CreateFirstClassroom(ctx context.Context, teacherID, name string) error {
	_, err := s.createClassroom(ctx, teacherID, name)
	return err
}

// ListClassrooms 当前教师的课堂列表
func (s *ClassroomService) ListClassrooms(ctx context.Context, req *board.ListClassroomsReq) (*board.ListClassroomsResp, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	classrooms, total, err := s.ClassroomMapper.FindByTeacher(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取课堂列表失败: %v", err)
		return nil, consts.ErrGetClassroomList
	}

	infos := lo.Map(classrooms, func(c *classroom.Classroom, _ int) *board.ClassroomInfo {
		return toClassroomInfo(c)
	})

	return &board.ListClassroomsResp{
		Classrooms: infos,
		Total:      total,
	}, nil
}

// ResolveByCode 按课堂码查询, 学生加入入口, 无需登录
// 带studentName且未重名时把学生记入名册, 同名重复加入是幂等的
func (s *ClassroomService) ResolveByCode(ctx context.Context, req *board.ResolveClassroomReq) (*board.ResolveClassroomResp, error) {
	c, err := s.ClassroomMapper.FindOneByCode(ctx, req.Code)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if name := req.GetStudentName(); name != "" {
		joined := lo.ContainsBy(c.Students, func(st classroom.Student) bool {
			return st.Name == name
		})
		if !joined {
			st := classroom.Student{Name: name, JoinedAt: time.Now()}
			if err = s.ClassroomMapper.AddStudent(ctx, c.ID.Hex(), st); err != nil {
				log.Error("加入课堂失败: %v", err)
				return nil, consts.ErrJoinClassroom
			}
			c.Students = append(c.Students, st)
		}
	}

	students := lo.Map(c.Students, func(st classroom.Student, _ int) *board.StudentInfo {
		return &board.StudentInfo{
			Name:     st.Name,
			JoinedAt: st.JoinedAt.Unix(),
		}
	})

	return &board.ResolveClassroomResp{
		Classroom: toClassroomInfo(c),
		Students:  students,
	}, nil
}

// DeleteClassroom 仅限课堂归属教师删除, 连带清理问题和教师列表里的引用
func (s *ClassroomService) DeleteClassroom(ctx context.Context, req *board.DeleteClassroomReq) (*board.Response, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassroomMapper.FindOneByCode(ctx, req.Code)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.TeacherID != meta.GetUserId() {
		// 非归属教师与不存在同样返回NotFound
		return nil, consts.ErrNotFound
	}

	if err = s.ClassroomMapper.Delete(ctx, c.ID.Hex()); err != nil {
		log.Error("删除课堂失败: %v", err)
		return nil, consts.ErrDeleteClassroom
	}

	if err = s.TeacherMapper.RemoveClassroom(ctx, meta.GetUserId(), c.ID.Hex()); err != nil {
		log.Error("解绑课堂失败: %v", err)
	}
	if err = s.QuestionMapper.DeleteByClassroom(ctx, c.ID.Hex()); err != nil {
		log.Error("清理课堂问题失败: %v", err)
	}

	return util.Succeed("删除成功")
}

func (s *ClassroomService) createClassroom(ctx context.Context, teacherID, name string) (*classroom.Classroom, error) {
	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &classroom.Classroom{
		Code:       code,
		Name:       name,
		TeacherID:  teacherID,
		Students:   []classroom.Student{},
		CreateTime: now,
		UpdateTime: now,
	}
	if err = s.ClassroomMapper.Insert(ctx, c); err != nil {
		log.Error("创建课堂失败: %v", err)
		return nil, consts.ErrCreateClassroom
	}

	if err = s.TeacherMapper.AddClassroom(ctx, teacherID, c.ID.Hex()); err != nil {
		// 两次写之间失败会留下孤儿课堂, 这里只记录错误
		log.Error("追加教师课堂列表失败: %v", err)
	}
	return c, nil
}

// generateUniqueCode 生成6位课堂码, 撞码时重新生成
func (s *ClassroomService) generateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < consts.CodeMaxRetries; i++ {
		code := generateCode()
		_, err := s.ClassroomMapper.FindOneByCode(ctx, code)
		if errors.Is(err, consts.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", consts.ErrCreateClassroom
		}
	}
	return "", consts.ErrCreateClassroom
}

// generateCode 由随机uuid截取得到, 大写字母+数字
func generateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:consts.CodeLength])
}

func toClassroomInfo(c *classroom.Classroom) *board.ClassroomInfo {
	return &board.ClassroomInfo{
		Id:           c.ID.Hex(),
		Code:         c.Code,
		Name:         c.Name,
		StudentCount: int64(len(c.Students)),
		CreateTime:   c.CreateTime.Unix(),
	}
}
