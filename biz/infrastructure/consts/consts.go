package consts

// 数据库相关
const (
	ID          = "_id"
	Code        = "code"
	TeacherID   = "teacher_id"
	ClassroomID = "classroom_id"
	Username    = "username"
	Status      = "status"
	Author      = "author"
	CreateTime  = "create_time"
)

// 问题状态
const (
	StatusUnanswered = "unanswered"
	StatusAnswered   = "answered"
	StatusImportant  = "important"
)

// 默认值
const (
	DefaultCategory    = "general"
	DefaultColor       = "yellow"
	CodeLength         = 6
	CodeMaxRetries     = 5
	BcryptCost         = 10
	SessionCookie      = "board_session"
	DefaultClassSuffix = "的课堂"
)
