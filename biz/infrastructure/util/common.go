package util

import (
	"encoding/json"
	"note-board/biz/application/dto/board"
)

// JSONF 序列化为json字符串, 仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func Succeed(msg string) (*board.Response, error) {
	return &board.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}
