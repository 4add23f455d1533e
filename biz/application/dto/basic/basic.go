package basic

// TeacherMeta 请求级的教师身份, 由会话网关解析得到
type TeacherMeta struct {
	UserId    string `form:"userId" json:"userId" query:"userId"`
	SessionId string `form:"sessionId" json:"sessionId" query:"sessionId"`
	Username  string `form:"username" json:"username" query:"username"`
}

func (m *TeacherMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *TeacherMeta) GetSessionId() string {
	if m == nil {
		return ""
	}
	return m.SessionId
}

func (m *TeacherMeta) GetUsername() string {
	if m == nil {
		return ""
	}
	return m.Username
}
