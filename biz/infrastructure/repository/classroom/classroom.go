package classroom

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	Name     string    `bson:"name" json:"name"`
	JoinedAt time.Time `bson:"joined_at" json:"joinedAt"`
}

type Classroom struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code       string             `bson:"code" json:"code"` // 6位大写字母+数字
	Name       string             `bson:"name" json:"name"`
	TeacherID  string             `bson:"teacher_id" json:"teacherId"`
	Students   []Student          `bson:"students" json:"students"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
