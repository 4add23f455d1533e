package main

import (
	"context"
	"note-board/biz/adaptor"
	"note-board/biz/infrastructure/config"
	"note-board/provider"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	// 允许前端携带cookie跨域
	h.Use(cors.New(cors.Config{
		AllowOrigins:     c.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 把hertz上下文注入ctx, 供会话网关解析
	h.Use(func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	})

	customizedRegister(h)
	h.Spin()
}
