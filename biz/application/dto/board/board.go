package board

// Response 通用响应
type Response struct {
	Code int64  `form:"code" json:"code" query:"code"`
	Msg  string `form:"msg" json:"msg" query:"msg"`
}

type SignUpReq struct {
	Username string `form:"username" json:"username" query:"username"`
	Password string `form:"password" json:"password" query:"password"`
}

type SignUpResp struct {
	Id       string `form:"id" json:"id" query:"id"`
	Username string `form:"username" json:"username" query:"username"`
}

type SignInReq struct {
	Username string `form:"username" json:"username" query:"username"`
	Password string `form:"password" json:"password" query:"password"`
}

type SignInResp struct {
	Id           string `form:"id" json:"id" query:"id"`
	Username     string `form:"username" json:"username" query:"username"`
	AccessToken  string `form:"accessToken" json:"accessToken" query:"accessToken"`
	AccessExpire int64  `form:"accessExpire" json:"accessExpire" query:"accessExpire"`
}

type SignOutReq struct {
}

type GetTeacherInfoReq struct {
}

type GetTeacherInfoResp struct {
	Id             string `form:"id" json:"id" query:"id"`
	Username       string `form:"username" json:"username" query:"username"`
	ClassroomCount int64  `form:"classroomCount" json:"classroomCount" query:"classroomCount"`
}

type ClassroomInfo struct {
	Id           string `form:"id" json:"id" query:"id"`
	Code         string `form:"code" json:"code" query:"code"`
	Name         string `form:"name" json:"name" query:"name"`
	StudentCount int64  `form:"studentCount" json:"studentCount" query:"studentCount"`
	CreateTime   int64  `form:"createTime" json:"createTime" query:"createTime"`
}

type StudentInfo struct {
	Name     string `form:"name" json:"name" query:"name"`
	JoinedAt int64  `form:"joinedAt" json:"joinedAt" query:"joinedAt"`
}

type CreateClassroomReq struct {
	Name string `form:"name" json:"name" query:"name"`
}

type CreateClassroomResp struct {
	ClassroomId string `form:"classroomId" json:"classroomId" query:"classroomId"`
	Code        string `form:"code" json:"code" query:"code"`
	Name        string `form:"name" json:"name" query:"name"`
	Total       int64  `form:"total" json:"total" query:"total"`
}

type ListClassroomsReq struct {
}

type ListClassroomsResp struct {
	Classrooms []*ClassroomInfo `form:"classrooms" json:"classrooms" query:"classrooms"`
	Total      int64            `form:"total" json:"total" query:"total"`
}

type ResolveClassroomReq struct {
	Code        string  `path:"code" form:"code" json:"code" query:"code"`
	StudentName *string `form:"studentName" json:"studentName,omitempty" query:"studentName"`
}

func (r *ResolveClassroomReq) GetStudentName() string {
	if r == nil || r.StudentName == nil {
		return ""
	}
	return *r.StudentName
}

type ResolveClassroomResp struct {
	Classroom *ClassroomInfo `form:"classroom" json:"classroom" query:"classroom"`
	Students  []*StudentInfo `form:"students" json:"students" query:"students"`
}

type DeleteClassroomReq struct {
	Code string `path:"code" form:"code" json:"code" query:"code"`
}

type AttachmentInfo struct {
	Name        string `form:"name" json:"name" query:"name"`
	Url         string `form:"url" json:"url" query:"url"`
	ContentType string `form:"contentType" json:"contentType" query:"contentType"`
	Size        int64  `form:"size" json:"size" query:"size"`
}

type AnswerInfo struct {
	Text        string            `form:"text" json:"text" query:"text"`
	TeacherId   string            `form:"teacherId" json:"teacherId" query:"teacherId"`
	Timestamp   int64             `form:"timestamp" json:"timestamp" query:"timestamp"`
	Attachments []*AttachmentInfo `form:"attachments" json:"attachments,omitempty" query:"attachments"`
}

type QuestionInfo struct {
	Id          string      `form:"id" json:"id" query:"id"`
	ClassroomId string      `form:"classroomId" json:"classroom_id" query:"classroomId"`
	Question    string      `form:"question" json:"question" query:"question"`
	Author      string      `form:"author" json:"author" query:"author"`
	Status      string      `form:"status" json:"status" query:"status"`
	Color       string      `form:"color" json:"color" query:"color"`
	Category    string      `form:"category" json:"category" query:"category"`
	Answer      *AnswerInfo `form:"answer" json:"answer,omitempty" query:"answer"`
	CreateTime  int64       `form:"createTime" json:"timestamp" query:"createTime"`
}

type CreateQuestionReq struct {
	ClassroomId string  `form:"classroom_id" json:"classroom_id" query:"classroom_id"`
	Question    string  `form:"question" json:"question" query:"question"`
	Author      string  `form:"author" json:"author" query:"author"`
	Color       *string `form:"color" json:"color,omitempty" query:"color"`
	Category    *string `form:"category" json:"category,omitempty" query:"category"`
}

func (r *CreateQuestionReq) GetColor() string {
	if r == nil || r.Color == nil {
		return ""
	}
	return *r.Color
}

func (r *CreateQuestionReq) GetCategory() string {
	if r == nil || r.Category == nil {
		return ""
	}
	return *r.Category
}

type CreateQuestionResp struct {
	Question *QuestionInfo `form:"question" json:"question" query:"question"`
}

type ListQuestionsReq struct {
	ClassroomId string  `path:"classroom_id" form:"classroom_id" json:"classroom_id" query:"classroom_id"`
	Status      *string `form:"status" json:"status,omitempty" query:"status"`
	Author      *string `form:"author" json:"author,omitempty" query:"author"`
	From        *string `form:"from" json:"from,omitempty" query:"from"`
	To          *string `form:"to" json:"to,omitempty" query:"to"`
}

type ListQuestionsResp struct {
	Questions []*QuestionInfo `form:"questions" json:"questions" query:"questions"`
	Total     int64           `form:"total" json:"total" query:"total"`
}

type UpdateQuestionStatusReq struct {
	Id     string `path:"id" form:"id" json:"id" query:"id"`
	Status string `form:"status" json:"status" query:"status"`
}

type UpdateQuestionStatusResp struct {
	Question *QuestionInfo `form:"question" json:"question" query:"question"`
}

type AnswerQuestionReq struct {
	Id          string            `path:"id" form:"id" json:"id" query:"id"`
	Text        string            `form:"text" json:"text" query:"text"`
	Attachments []*AttachmentInfo `form:"attachments" json:"attachments,omitempty" query:"attachments"`
}

type AnswerQuestionResp struct {
	Question *QuestionInfo `form:"question" json:"question" query:"question"`
}

type DeleteQuestionReq struct {
	Id string `path:"id" form:"id" json:"id" query:"id"`
}

type ApplySignedUrlReq struct {
	Prefix *string `form:"prefix" json:"prefix,omitempty" query:"prefix"`
	Suffix *string `form:"suffix" json:"suffix,omitempty" query:"suffix"`
}

func (r *ApplySignedUrlReq) GetPrefix() string {
	if r == nil || r.Prefix == nil {
		return ""
	}
	return *r.Prefix
}

func (r *ApplySignedUrlReq) GetSuffix() string {
	if r == nil || r.Suffix == nil {
		return ""
	}
	return *r.Suffix
}

type ApplySignedUrlResp struct {
	Url string `form:"url" json:"url" query:"url"`
	Key string `form:"key" json:"key" query:"key"`
}
