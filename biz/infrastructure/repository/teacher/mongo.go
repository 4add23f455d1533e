package teacher

import (
	"context"
	"errors"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixTeacherCacheKey = "cache:teacher"
	TeacherCollectionName = "teacher"
)

type Mapper interface {
	Insert(ctx context.Context, teacher *Teacher) error
	Update(ctx context.Context, teacher *Teacher) error
	FindOne(ctx context.Context, id string) (*Teacher, error)
	FindOneByUsername(ctx context.Context, username string) (*Teacher, error)
	AddClassroom(ctx context.Context, id string, classroomID string) error
	RemoveClassroom(ctx context.Context, id string, classroomID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewTeacherMongoMapper collection: %s", TeacherCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TeacherCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, teacher *Teacher) error {
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
		teacher.CreateTime = time.Now()
		teacher.UpdateTime = teacher.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, teacher)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, teacher *Teacher) error {
	teacher.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, teacher.ID, bson.M{"$set": teacher})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Teacher, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var t Teacher
	err = m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &t, nil
}

func (m *MongoMapper) FindOneByUsername(ctx context.Context, username string) (*Teacher, error) {
	var t Teacher
	err := m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.Username: username,
	})
	switch {
	case err == nil:
		return &t, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// AddClassroom 将课堂id追加到教师的课堂列表
func (m *MongoMapper) AddClassroom(ctx context.Context, id string, classroomID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$push": bson.M{"classrooms": classroomID},
		"$set":  bson.M{"update_time": time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveClassroom(ctx context.Context, id string, classroomID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$pull": bson.M{"classrooms": classroomID},
		"$set":  bson.M{"update_time": time.Now()},
	})
	return err
}
