package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

type (
	AwsS3 interface {
		UploadDataURL(dataURL string, folder string) (string, error)
		DeleteFile(objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := os.Getenv("AWS_S3_REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY"),
			os.Getenv("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("AWS_S3_BUCKET"),
		region: region,
	}
}

// UploadDataURL uploads an inline base64 image under folder and returns
// the object key. The payload is re-wrapped as JPEG regardless of the
// declared media type. Keys carry no extension so they round-trip
// through GetObjectKeyFromLink.
func (a *awsS3) UploadDataURL(dataURL string, folder string) (string, error) {
	raw := dataURLPrefix.ReplaceAllString(dataURL, "")

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", errors.New("invalid base64 image payload")
	}

	objectKey := folder + "/" + uuid.New().String()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

// GetObjectKeyFromLink derives the object key from a public link: the
// last path segment with its extension stripped, prefixed with the
// folder segment it lives in.
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	parsed, err := url.Parse(link)
	if err != nil || parsed.Path == "" {
		return ""
	}

	base := path.Base(parsed.Path)
	name := strings.TrimSuffix(base, path.Ext(base))

	folder := path.Base(path.Dir(parsed.Path))
	if folder == "/" || folder == "." {
		return name
	}
	return folder + "/" + name
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
