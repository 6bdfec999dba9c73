package storage

import (
	"io"

	"webgis/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
	uploader *s3manager.Uploader
}

func NewS3Storage(cfg *config.Storage) *S3Storage {
	awsConfig := aws.Config{
		Region:      aws.String(cfg.S3Region),
		Credentials: credentials.NewStaticCredentials(cfg.S3Key, cfg.S3Secret, ""),
	}
	if cfg.S3Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.S3Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	client := s3.New(session.Must(session.NewSession(&awsConfig)))
	return &S3Storage{
		bucket:   cfg.S3Bucket,
		s3Client: client,
		uploader: s3manager.NewUploaderWithClient(client),
	}
}

func (s *S3Storage) Save(key, contentType string, reader io.Reader) error {
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      &s.bucket,
		Key:         aws.String(key),
		ContentType: &contentType,
		Body:        reader,
	})
	return err
}

func (s *S3Storage) Open(key string) (io.ReadCloser, string, int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok && (awsErr.Code() == s3.ErrCodeNoSuchKey || awsErr.Code() == "NotFound") {
			return nil, "", 0, ErrNotFound
		}
		return nil, "", 0, err
	}
	contentType := "application/octet-stream"
	if resp.ContentType != nil {
		contentType = *resp.ContentType
	}
	size := int64(-1)
	if resp.ContentLength != nil {
		size = *resp.ContentLength
	}
	return resp.Body, contentType, size, nil
}

// Delete removes the remote object. S3 deletes are idempotent already:
// removing a missing key succeeds.
func (s *S3Storage) Delete(key string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(key),
	})
	return err
}
