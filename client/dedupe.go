package client

import (
	"context"
	"strings"
	"unicode"
)

// 提交前的本地查重, 只是提示性的:
// 服务端不保证唯一, 并发提交或直接调接口都能绕过

// NormalizeText 小写化, 去标点, 合并空白
func NormalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// HasDuplicate 候选文本与已有问题归一化后完全相同时返回true
func HasDuplicate(existing []Question, candidate string) bool {
	normalized := NormalizeText(candidate)
	if normalized == "" {
		return false
	}
	for _, q := range existing {
		if NormalizeText(q.Question) == normalized {
			return true
		}
	}
	return false
}

// PostQuestionDeduped 先对照当前板上内容查重, 命中则拒绝提交
func (c *BoardClient) PostQuestionDeduped(ctx context.Context, classroomID, questionText, author, color, category string) (*Question, bool, error) {
	existing, err := c.ListQuestions(ctx, classroomID, nil)
	if err != nil {
		return nil, false, err
	}
	if HasDuplicate(existing, questionText) {
		return nil, true, nil
	}
	q, err := c.PostQuestion(ctx, classroomID, questionText, author, color, category)
	return q, false, err
}
