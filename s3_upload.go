package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// uploadToS3 archives a results CSV in the configured bucket.
func uploadToS3(ctx context.Context, cfg aws.Config, bucket, fileName string) error {
	client := s3.NewFromConfig(cfg)

	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("failed to open file %s for upload: %w", fileName, err)
	}
	defer file.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(fileName),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object, %w", err)
	}
	return nil
}
