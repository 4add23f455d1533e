package service

import (
	"context"
	"fmt"
	"note-board/biz/adaptor"
	"note-board/biz/application/dto/board"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/util/log"
	"note-board/biz/infrastructure/util/oss"

	"github.com/google/uuid"
	"github.com/google/wire"
)

type IStsService interface {
	ApplySignedUrl(ctx context.Context, req *board.ApplySignedUrlReq) (*board.ApplySignedUrlResp, error)
}

type StsService struct {
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

// ApplySignedUrl 为回答附件申请加签上传url
func (s *StsService) ApplySignedUrl(ctx context.Context, req *board.ApplySignedUrlReq) (*board.ApplySignedUrlResp, error) {
	meta := adaptor.ExtractTeacherMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	prefix := req.GetPrefix()
	if prefix != "" {
		prefix += "/"
	}
	key := fmt.Sprintf("answers_%s/%s/%s%s%s",
		config.GetConfig().State, meta.GetUserId(), prefix, uuid.New().String(), req.GetSuffix())

	url, err := oss.PresignPut(config.GetConfig(), key)
	if err != nil {
		log.Error("生成加签url失败: %v", err)
		return nil, consts.ErrSignedUrl
	}

	return &board.ApplySignedUrlResp{
		Url: url,
		Key: key,
	}, nil
}
