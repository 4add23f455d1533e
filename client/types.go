package client

// 服务端响应的客户端侧视图, 字段与接口json对齐

type Teacher struct {
	Id       string `json:"id" mapstructure:"id"`
	Username string `json:"username" mapstructure:"username"`
}

type Classroom struct {
	Id           string `json:"id" mapstructure:"id"`
	Code         string `json:"code" mapstructure:"code"`
	Name         string `json:"name" mapstructure:"name"`
	StudentCount int64  `json:"studentCount" mapstructure:"studentCount"`
	CreateTime   int64  `json:"createTime" mapstructure:"createTime"`
}

type Student struct {
	Name     string `json:"name" mapstructure:"name"`
	JoinedAt int64  `json:"joinedAt" mapstructure:"joinedAt"`
}

type Attachment struct {
	Name        string `json:"name" mapstructure:"name"`
	Url         string `json:"url" mapstructure:"url"`
	ContentType string `json:"contentType" mapstructure:"contentType"`
	Size        int64  `json:"size" mapstructure:"size"`
}

type Answer struct {
	Text        string       `json:"text" mapstructure:"text"`
	TeacherId   string       `json:"teacherId" mapstructure:"teacherId"`
	Timestamp   int64        `json:"timestamp" mapstructure:"timestamp"`
	Attachments []Attachment `json:"attachments" mapstructure:"attachments"`
}

type Question struct {
	Id          string  `json:"id" mapstructure:"id"`
	ClassroomId string  `json:"classroom_id" mapstructure:"classroom_id"`
	Question    string  `json:"question" mapstructure:"question"`
	Author      string  `json:"author" mapstructure:"author"`
	Status      string  `json:"status" mapstructure:"status"`
	Color       string  `json:"color" mapstructure:"color"`
	Category    string  `json:"category" mapstructure:"category"`
	Answer      *Answer `json:"answer" mapstructure:"answer"`
	CreateTime  int64   `json:"timestamp" mapstructure:"timestamp"`
}

// ListFilter 列表过滤条件, 均可选
type ListFilter struct {
	Status string
	Author string
	From   string
	To     string
}
