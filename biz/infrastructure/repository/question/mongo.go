package question

import (
	"context"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixQuestionCacheKey = "cache:question"
	QuestionCollectionName = "question"
)

// FindFilter 列表查询条件, 各条件取交集
type FindFilter struct {
	Status *string
	Author *string
	From   *time.Time
	To     *time.Time
}

type Mapper interface {
	Insert(ctx context.Context, question *Question) error
	FindOne(ctx context.Context, id string) (*Question, error)
	FindByClassroom(ctx context.Context, classroomID string, filter *FindFilter) ([]*Question, int64, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Question, error)
	UpdateAnswer(ctx context.Context, id string, answer *Answer) (*Question, error)
	Delete(ctx context.Context, id string) error
	DeleteByClassroom(ctx context.Context, classroomID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewQuestionMongoMapper collection: %s", QuestionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, QuestionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, question *Question) error {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
		question.CreateTime = time.Now()
		question.UpdateTime = question.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, question)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var q Question
	err = m.conn.FindOneNoCache(ctx, &q, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &q, nil
}

func (m *MongoMapper) FindByClassroom(ctx context.Context, classroomID string, filter *FindFilter) ([]*Question, int64, error) {
	var questions []*Question
	f := bson.M{consts.ClassroomID: classroomID}
	if filter != nil {
		if filter.Status != nil {
			f[consts.Status] = *filter.Status
		}
		if filter.Author != nil {
			f[consts.Author] = *filter.Author
		}
		if filter.From != nil || filter.To != nil {
			rng := bson.M{}
			if filter.From != nil {
				rng["$gte"] = *filter.From
			}
			if filter.To != nil {
				rng["$lte"] = *filter.To
			}
			f[consts.CreateTime] = rng
		}
	}

	total, err := m.conn.CountDocuments(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &questions, f, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

func (m *MongoMapper) UpdateStatus(ctx context.Context, id string, status string) (*Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			consts.Status: status,
			"update_time": time.Now(),
		},
	})
	if err != nil {
		return nil, err
	}
	return m.FindOne(ctx, id)
}

func (m *MongoMapper) UpdateAnswer(ctx context.Context, id string, answer *Answer) (*Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			"answer":      answer,
			consts.Status: consts.StatusAnswered,
			"update_time": time.Now(),
		},
	})
	if err != nil {
		return nil, err
	}
	return m.FindOne(ctx, id)
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

// DeleteByClassroom 删除课堂时级联清理其下问题
func (m *MongoMapper) DeleteByClassroom(ctx context.Context, classroomID string) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{consts.ClassroomID: classroomID})
	return err
}
