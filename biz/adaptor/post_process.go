package adaptor

import (
	"context"
	"note-board/biz/infrastructure/util"
	"note-board/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一响应处理: 成功时序列化resp, 失败时按错误码返回 {"error": msg}
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(hertz.StatusOK, resp)
		return
	}

	s, _ := status.FromError(err)
	c.JSON(httpStatus(s.Code()), utils.H{
		"error": s.Message(),
	})
}

// httpStatus grpc错误码到http状态码的映射
// AlreadyExists按原语义归到400
func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument, codes.AlreadyExists:
		return hertz.StatusBadRequest
	case codes.Unauthenticated:
		return hertz.StatusUnauthorized
	case codes.PermissionDenied:
		return hertz.StatusForbidden
	case codes.NotFound:
		return hertz.StatusNotFound
	default:
		return hertz.StatusInternalServerError
	}
}
