package classroom

import (
	"context"
	"errors"
	"note-board/biz/infrastructure/config"
	"note-board/biz/infrastructure/consts"
	"note-board/biz/infrastructure/util/log"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixClassroomCacheKey = "cache:classroom"
	ClassroomCollectionName = "classroom"
)

type Mapper interface {
	Insert(ctx context.Context, classroom *Classroom) error
	FindOne(ctx context.Context, id string) (*Classroom, error)
	FindOneByCode(ctx context.Context, code string) (*Classroom, error)
	FindByTeacher(ctx context.Context, teacherID string) ([]*Classroom, int64, error)
	AddStudent(ctx context.Context, id string, student Student) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassroomMongoMapper collection: %s", ClassroomCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassroomCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, classroom *Classroom) error {
	if classroom.ID.IsZero() {
		classroom.ID = primitive.NewObjectID()
		classroom.CreateTime = time.Now()
		classroom.UpdateTime = classroom.CreateTime
	}
	// 统一存大写, 按码查询时大小写不敏感
	classroom.Code = strings.ToUpper(classroom.Code)
	_, err := m.conn.InsertOneNoCache(ctx, classroom)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Classroom, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Classroom
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (m *MongoMapper) FindOneByCode(ctx context.Context, code string) (*Classroom, error) {
	var c Classroom
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.Code: strings.ToUpper(code),
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string) ([]*Classroom, int64, error) {
	var classrooms []*Classroom
	filter := bson.M{consts.TeacherID: teacherID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &classrooms, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return classrooms, total, nil
}

// AddStudent 追加学生, 是否重名由调用方判断
func (m *MongoMapper) AddStudent(ctx context.Context, id string, student Student) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$push": bson.M{"students": student},
		"$set":  bson.M{"update_time": time.Now()},
	})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
