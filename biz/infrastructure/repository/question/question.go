package question

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Attachment struct {
	Name        string `bson:"name" json:"name"`
	Url         string `bson:"url" json:"url"`
	ContentType string `bson:"content_type" json:"contentType"`
	Size        int64  `bson:"size" json:"size"`
}

type Answer struct {
	Text        string       `bson:"text" json:"text"`
	TeacherID   string       `bson:"teacher_id" json:"teacherId"`
	Timestamp   time.Time    `bson:"timestamp" json:"timestamp"`
	Attachments []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
}

type Question struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassroomID string             `bson:"classroom_id" json:"classroomId"`
	Question    string             `bson:"question" json:"question"`
	Author      string             `bson:"author" json:"author"`
	Status      string             `bson:"status" json:"status"` // unanswered/answered/important
	Color       string             `bson:"color" json:"color"`
	Category    string             `bson:"category" json:"category"`
	Answer      *Answer            `bson:"answer,omitempty" json:"answer,omitempty"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
