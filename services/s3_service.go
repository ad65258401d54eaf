package services

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service issues presigned URLs for profile photo and verification
// photo uploads, so image bytes never pass through the API server.
type S3Service struct {
	Bucket string
	Client *s3.Client
}

// NewS3Service builds the S3 client for the given region and bucket.
func NewS3Service(region, bucket string) *S3Service {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config for S3: %v", err)
	}
	return &S3Service{Bucket: bucket, Client: s3.NewFromConfig(cfg)}
}

// GenerateUploadURL returns a presigned PUT URL and the object key the
// client should reference after uploading.
func (s *S3Service) GenerateUploadURL(ctx context.Context, folder, fileName, fileType string) (string, string, error) {
	if folder == "" {
		folder = "profile-photos"
	}
	key := folder + "/" + time.Now().UTC().Format("20060102150405") + "-" + fileName

	presigner := s3.NewPresignClient(s.Client)
	presigned, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presigned.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for a stored object.
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	presigner := s3.NewPresignClient(s.Client)
	presigned, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presigned.URL, nil
}
