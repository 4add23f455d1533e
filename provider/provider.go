package provider

import (
	"note-board/biz/application/service"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/repository/classroom"
	"note-board/biz/infrastructure/repository/question"
	"note-board/biz/infrastructure/repository/teacher"
	"note-board/biz/infrastructure/session"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config           *config.Config
	AuthService      service.IAuthService
	ClassroomService service.IClassroomService
	QuestionService  service.IQuestionService
	StsService       service.IStsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.ClassroomServiceSet,
	service.QuestionServiceSet,
	service.StsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	teacher.NewMongoMapper,
	wire.Bind(new(teacher.Mapper), new(*teacher.MongoMapper)),
	classroom.NewMongoMapper,
	wire.Bind(new(classroom.Mapper), new(*classroom.MongoMapper)),
	question.NewMongoMapper,
	wire.Bind(new(question.Mapper), new(*question.MongoMapper)),
	session.NewRedisStore,
	wire.Bind(new(session.Store), new(*session.RedisStore)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
