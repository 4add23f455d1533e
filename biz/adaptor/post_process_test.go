package adaptor

import (
	"testing"

	"note-board/biz/infrastructure/consts"

	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHttpStatus(t *testing.T) {
	cases := []struct {
		code codes.Code
		want int
	}{
		{codes.InvalidArgument, hertz.StatusBadRequest},
		{codes.AlreadyExists, hertz.StatusBadRequest},
		{codes.Unauthenticated, hertz.StatusUnauthorized},
		{codes.PermissionDenied, hertz.StatusForbidden},
		{codes.NotFound, hertz.StatusNotFound},
		{codes.Internal, hertz.StatusInternalServerError},
		{codes.Unknown, hertz.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := httpStatus(c.code); got != c.want {
			t.Errorf("httpStatus(%v) = %d, 期望%d", c.code, got, c.want)
		}
	}
}

func TestErrnoStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{consts.ErrRepeatedSignUp, hertz.StatusBadRequest},
		{consts.ErrInvalidStatus, hertz.StatusBadRequest},
		{consts.ErrEmptyName, hertz.StatusBadRequest},
		{consts.ErrSignIn, hertz.StatusUnauthorized},
		{consts.ErrNotAuthentication, hertz.StatusUnauthorized},
		{consts.ErrForbidden, hertz.StatusForbidden},
		{consts.ErrNotFound, hertz.StatusNotFound},
		{consts.ErrCreateClassroom, hertz.StatusInternalServerError},
	}
	for _, c := range cases {
		s, _ := status.FromError(c.err)
		if got := httpStatus(s.Code()); got != c.want {
			t.Errorf("%v 映射到%d, 期望%d", c.err, got, c.want)
		}
	}
}
