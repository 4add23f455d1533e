package client

import (
	"context"
	"time"
)

// DefaultPollInterval 贴纸板的轮询刷新周期
const DefaultPollInterval = 30 * time.Second

// Watcher 周期性拉取课堂问题列表
// 没有推送机制, 新内容最晚在下一轮出现
type Watcher struct {
	client      *BoardClient
	classroomID string
	interval    time.Duration
	filter      *ListFilter
}

func (c *BoardClient) NewWatcher(classroomID string, interval time.Duration, filter *ListFilter) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		client:      c,
		classroomID: classroomID,
		interval:    interval,
		filter:      filter,
	}
}

// Watch 启动轮询, 每轮结果经onUpdate回调, 拉取失败经onError回调
// ctx取消即停止
func (w *Watcher) Watch(ctx context.Context, onUpdate func([]Question), onError func(error)) {
	fetch := func() {
		questions, err := w.client.ListQuestions(ctx, w.classroomID, w.filter)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onUpdate(questions)
	}

	fetch()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}
