package controller

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Ping 健康检查
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(hertz.StatusOK, map[string]string{
		"ping": "pong",
	})
}
