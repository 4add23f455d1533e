package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// BoardClient 是贴纸板接口的简单 HTTP 客户端
// 登录后的会话cookie由jar自动携带
type BoardClient struct {
	Client  *http.Client
	BaseURL string
}

// NewBoardClient 创建一个新的 BoardClient 实例
func NewBoardClient(baseURL string) *BoardClient {
	jar, _ := cookiejar.New(nil)
	return &BoardClient{
		Client:  &http.Client{Jar: jar},
		BaseURL: baseURL,
	}
}

// SendRequest 发送 HTTP 请求
func (c *BoardClient) SendRequest(ctx context.Context, method, path string, body interface{}) (map[string]interface{}, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("请求体序列化失败: %w", err)
		}
		reader = bytes.NewBuffer(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	var responseMap map[string]interface{}
	if len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, &responseMap); err != nil {
			return nil, fmt.Errorf("反序列化响应失败: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg, ok := responseMap["error"].(string); ok {
			return nil, fmt.Errorf("请求失败: %s", msg)
		}
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	return responseMap, nil
}

// SignUp 教师注册
func (c *BoardClient) SignUp(ctx context.Context, username, password string) (*Teacher, error) {
	data, err := c.SendRequest(ctx, http.MethodPost, "/teacher/signup", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	t := new(Teacher)
	if err := mapstructure.Decode(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SignIn 教师登录, 会话cookie存入jar
func (c *BoardClient) SignIn(ctx context.Context, username, password string) (*Teacher, error) {
	data, err := c.SendRequest(ctx, http.MethodPost, "/teacher/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	t := new(Teacher)
	if err := mapstructure.Decode(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SignOut 教师登出
func (c *BoardClient) SignOut(ctx context.Context) error {
	_, err := c.SendRequest(ctx, http.MethodPost, "/teacher/logout", nil)
	return err
}

// CurrentTeacher 当前登录教师
func (c *BoardClient) CurrentTeacher(ctx context.Context) (*Teacher, error) {
	data, err := c.SendRequest(ctx, http.MethodGet, "/teacher/me", nil)
	if err != nil {
		return nil, err
	}
	t := new(Teacher)
	if err := mapstructure.Decode(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateClassroom 创建课堂
func (c *BoardClient) CreateClassroom(ctx context.Context, name string) (*Classroom, error) {
	data, err := c.SendRequest(ctx, http.MethodPost, "/teacher/classroom", map[string]string{
		"name": name,
	})
	if err != nil {
		return nil, err
	}
	cls := new(Classroom)
	if err := mapstructure.Decode(data, cls); err != nil {
		return nil, err
	}
	cls.Id, _ = data["classroomId"].(string)
	return cls, nil
}

// ListClassrooms 当前教师的课堂列表
func (c *BoardClient) ListClassrooms(ctx context.Context) ([]Classroom, error) {
	data, err := c.SendRequest(ctx, http.MethodGet, "/teacher/classrooms", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Classrooms []Classroom `mapstructure:"classrooms"`
	}
	if err := mapstructure.Decode(data, &out); err != nil {
		return nil, err
	}
	return out.Classrooms, nil
}

// ResolveClassroom 按课堂码查询, studentName非空时加入名册, 返回课堂与当前名册
func (c *BoardClient) ResolveClassroom(ctx context.Context, code, studentName string) (*Classroom, []Student, error) {
	var data map[string]interface{}
	var err error
	if studentName == "" {
		data, err = c.SendRequest(ctx, http.MethodGet, "/teacher/classroom/code/"+url.PathEscape(code), nil)
	} else {
		data, err = c.SendRequest(ctx, http.MethodPost, "/teacher/classroom/code/"+url.PathEscape(code), map[string]string{
			"studentName": studentName,
		})
	}
	if err != nil {
		return nil, nil, err
	}
	var out struct {
		Classroom *Classroom `mapstructure:"classroom"`
		Students  []Student  `mapstructure:"students"`
	}
	if err := mapstructure.Decode(data, &out); err != nil {
		return nil, nil, err
	}
	return out.Classroom, out.Students, nil
}

// DeleteClassroom 删除课堂
func (c *BoardClient) DeleteClassroom(ctx context.Context, code string) error {
	_, err := c.SendRequest(ctx, http.MethodDelete, "/teacher/classroom/"+url.PathEscape(code), nil)
	return err
}

// PostQuestion 学生提交问题
func (c *BoardClient) PostQuestion(ctx context.Context, classroomID, questionText, author, color, category string) (*Question, error) {
	body := map[string]string{
		"classroom_id": classroomID,
		"question":     questionText,
		"author":       author,
	}
	if color != "" {
		body["color"] = color
	}
	if category != "" {
		body["category"] = category
	}
	data, err := c.SendRequest(ctx, http.MethodPost, "/question", body)
	if err != nil {
		return nil, err
	}
	var out struct {
		Question *Question `mapstructure:"question"`
	}
	if err := mapstructure.Decode(data, &out); err != nil {
		return nil, err
	}
	return out.Question, nil
}

// ListQuestions 课堂问题列表
func (c *BoardClient) ListQuestions(ctx context.Context, classroomID string, filter *ListFilter) ([]Question, error) {
	path := "/question/" + url.PathEscape(classroomID)
	if filter != nil {
		q := url.Values{}
		if filter.Status != "" {
			q.Set("status", filter.Status)
		}
		if filter.Author != "" {
			q.Set("author", filter.Author)
		}
		if filter.From != "" {
			q.Set("from", filter.From)
		}
		if filter.To != "" {
			q.Set("to", filter.To)
		}
		if encoded := q.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	data, err := c.SendRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Questions []Question `mapstructure:"questions"`
	}
	if err := mapstructure.Decode(data, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// UpdateQuestionStatus 教师流转问题状态
func (c *BoardClient) UpdateQuestionStatus(ctx context.Context, id, status string) (*Question, error) {
	data, err := c.SendRequest(ctx, http.MethodPatch, "/question/"+url.PathEscape(id)+"/status", map[string]string{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		Question *Question `mapstructure:"question"`
	}
	if err := mapstructure.Decode(data, &out); err != nil {
		return nil, err
	}
	return out.Question, nil
}

// DeleteQuestion 教师删除问题
func (c *BoardClient) DeleteQuestion(ctx context.Context, id string) error {
	_, err := c.SendRequest(ctx, http.MethodDelete, "/question/"+url.PathEscape(id), nil)
	return err
}
