package oss

import (
	"note-board/biz/infrastructure/config"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// 对象存储客户端, 用于回答附件的加签直传
var (
	client *s3.S3
	once   sync.Once
)

func GetClient(c *config.Config) *s3.S3 {
	once.Do(func() {
		sess := session.Must(session.NewSession(&aws.Config{
			Endpoint:         aws.String(c.Oss.Endpoint),
			Region:           aws.String(c.Oss.Region),
			Credentials:      credentials.NewStaticCredentials(c.Oss.AccessKey, c.Oss.SecretKey, ""),
			S3ForcePathStyle: aws.Bool(true),
		}))
		client = s3.New(sess)
	})
	return client
}

// PresignPut 生成限时的上传url
func PresignPut(c *config.Config, key string) (string, error) {
	req, _ := GetClient(c).PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(c.Oss.Bucket),
		Key:    aws.String(key),
	})
	return req.Presign(15 * time.Minute)
}
