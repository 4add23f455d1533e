package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"note-board/biz/adaptor"
	"note-board/biz/application/dto/basic"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/repository/classroom"
	"note-board/biz/infrastructure/repository/question"
	"note-board/biz/infrastructure/repository/teacher"
	"note-board/biz/infrastructure/session"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版mapper, 行为对齐mongo实现: 未命中返回ErrNotFound, 列表按create_time倒序

type fakeTeacherMapper struct {
	teachers map[string]*teacher.Teacher
}

func newFakeTeacherMapper() *fakeTeacherMapper {
	return &fakeTeacherMapper{teachers: make(map[string]*teacher.Teacher)}
}

func (m *fakeTeacherMapper) Insert(ctx context.Context, t *teacher.Teacher) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	m.teachers[t.ID.Hex()] = t
	return nil
}

func (m *fakeTeacherMapper) Update(ctx context.Context, t *teacher.Teacher) error {
	if _, ok := m.teachers[t.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	m.teachers[t.ID.Hex()] = t
	return nil
}

func (m *fakeTeacherMapper) FindOne(ctx context.Context, id string) (*teacher.Teacher, error) {
	t, ok := m.teachers[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return t, nil
}

func (m *fakeTeacherMapper) FindOneByUsername(ctx context.Context, username string) (*teacher.Teacher, error) {
	for _, t := range m.teachers {
		if t.Username == username {
			return t, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeTeacherMapper) AddClassroom(ctx context.Context, id string, classroomID string) error {
	t, ok := m.teachers[id]
	if !ok {
		return consts.ErrNotFound
	}
	t.Classrooms = append(t.Classrooms, classroomID)
	return nil
}

func (m *fakeTeacherMapper) RemoveClassroom(ctx context.Context, id string, classroomID string) error {
	t, ok := m.teachers[id]
	if !ok {
		return consts.ErrNotFound
	}
	kept := t.Classrooms[:0]
	for _, cid := range t.Classrooms {
		if cid != classroomID {
			kept = append(kept, cid)
		}
	}
	t.Classrooms = kept
	return nil
}

type fakeClassroomMapper struct {
	classrooms map[string]*classroom.Classroom
}

func newFakeClassroomMapper() *fakeClassroomMapper {
	return &fakeClassroomMapper{classrooms: make(map[string]*classroom.Classroom)}
}

func (m *fakeClassroomMapper) Insert(ctx context.Context, c *classroom.Classroom) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.classrooms[c.ID.Hex()] = c
	return nil
}

func (m *fakeClassroomMapper) FindOne(ctx context.Context, id string) (*classroom.Classroom, error) {
	c, ok := m.classrooms[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (m *fakeClassroomMapper) FindOneByCode(ctx context.Context, code string) (*classroom.Classroom, error) {
	upper := strings.ToUpper(code)
	for _, c := range m.classrooms {
		if c.Code == upper {
			return c, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeClassroomMapper) FindByTeacher(ctx context.Context, teacherID string) ([]*classroom.Classroom, int64, error) {
	var out []*classroom.Classroom
	for _, c := range m.classrooms {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreateTime.After(out[j].CreateTime)
	})
	return out, int64(len(out)), nil
}

func (m *fakeClassroomMapper) AddStudent(ctx context.Context, id string, student classroom.Student) error {
	c, ok := m.classrooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.Students = append(c.Students, student)
	return nil
}

func (m *fakeClassroomMapper) Delete(ctx context.Context, id string) error {
	if _, ok := m.classrooms[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.classrooms, id)
	return nil
}

type fakeQuestionMapper struct {
	questions map[string]*question.Question
}

func newFakeQuestionMapper() *fakeQuestionMapper {
	return &fakeQuestionMapper{questions: make(map[string]*question.Question)}
}

func (m *fakeQuestionMapper) Insert(ctx context.Context, q *question.Question) error {
	if q.ID.IsZero() {
		q.ID = primitive.NewObjectID()
	}
	m.questions[q.ID.Hex()] = q
	return nil
}

func (m *fakeQuestionMapper) FindOne(ctx context.Context, id string) (*question.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return q, nil
}

func (m *fakeQuestionMapper) FindByClassroom(ctx context.Context, classroomID string, filter *question.FindFilter) ([]*question.Question, int64, error) {
	var out []*question.Question
	for _, q := range m.questions {
		if q.ClassroomID != classroomID {
			continue
		}
		if filter != nil {
			if filter.Status != nil && q.Status != *filter.Status {
				continue
			}
			if filter.Author != nil && q.Author != *filter.Author {
				continue
			}
			if filter.From != nil && q.CreateTime.Before(*filter.From) {
				continue
			}
			if filter.To != nil && q.CreateTime.After(*filter.To) {
				continue
			}
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreateTime.After(out[j].CreateTime)
	})
	return out, int64(len(out)), nil
}

func (m *fakeQuestionMapper) UpdateStatus(ctx context.Context, id string, status string) (*question.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	q.Status = status
	q.UpdateTime = time.Now()
	return q, nil
}

func (m *fakeQuestionMapper) UpdateAnswer(ctx context.Context, id string, answer *question.Answer) (*question.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	q.Answer = answer
	q.Status = consts.StatusAnswered
	q.UpdateTime = time.Now()
	return q, nil
}

func (m *fakeQuestionMapper) Delete(ctx context.Context, id string) error {
	if _, ok := m.questions[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.questions, id)
	return nil
}

func (m *fakeQuestionMapper) DeleteByClassroom(ctx context.Context, classroomID string) error {
	for id, q := range m.questions {
		if q.ClassroomID == classroomID {
			delete(m.questions, id)
		}
	}
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Session)}
}

func (s *fakeSessionStore) Get(ctx context.Context, sid string) (*session.Session, error) {
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, errors.New("session not found")
	}
	return sess, nil
}

func (s *fakeSessionStore) Set(ctx context.Context, sid string, sess *session.Session) error {
	s.sessions[sid] = sess
	return nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func setupTestConfig() {
	config.SetConfig(&config.Config{
		Auth: config.Auth{
			SecretKey:    "unit-test-secret",
			AccessExpire: 3600,
		},
	})
}

// authedContext 构造带合法会话cookie的请求上下文
func authedContext(t *testing.T, store session.Store, teacherID, username string) context.Context {
	t.Helper()
	setupTestConfig()
	session.SetStore(store)

	sid := uuid.NewString()
	err := store.Set(context.Background(), sid, &session.Session{
		TeacherID:  teacherID,
		Username:   username,
		CreateTime: time.Now(),
	})
	if err != nil {
		t.Fatalf("写入会话失败: %v", err)
	}

	token, _, err := adaptor.GenerateSessionToken(sid, teacherID, username)
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	c := app.NewContext(0)
	c.Request.Header.SetCookie(consts.SessionCookie, token)
	return adaptor.InjectContext(context.Background(), c)
}

func mustMeta(t *testing.T, ctx context.Context) *basic.TeacherMeta {
	t.Helper()
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		t.Fatal("期望解析出教师会话")
	}
	return meta
}
