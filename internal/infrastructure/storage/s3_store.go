package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const defaultBucketName = "kyndly-ichra-documents"

// S3Store implements the partitioned document store on top of S3.
//
// Key scheme (fixed, consumed by storage-level prefix policies):
//
//	submissions/{tpaId}/{employerId}/{submissionId}/{fileName}
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IFileStore = (*S3Store)(nil)

// NewS3Store wires an S3-backed store. The bucket comes from AWS_S3_BUCKET
// when empty; S3_ENDPOINT switches the client to a path-style local
// backend (MinIO, LocalStack).
func NewS3Store(cfg aws.Config, bucket string) *S3Store {
	if bucket == "" {
		bucket = getenvDefault("AWS_S3_BUCKET", defaultBucketName)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

// QuoteFileKey builds the deterministic partition key. The ordering is
// intentional: tenant first, then employer, then submission, so prefix
// listing and scope checks work at every level of the hierarchy without a
// separate index.
func QuoteFileKey(tpaID, employerID, submissionID, fileName string) string {
	return fmt.Sprintf("submissions/%s/%s/%s/%s", tpaID, employerID, submissionID, fileName)
}

func (s *S3Store) StoreQuoteFile(ctx context.Context, data []byte, fileName, tpaID, employerID, contentType, submissionID string) (interfaces.StoredFile, error) {
	if submissionID == "" {
		submissionID = uuid.NewString()
	}
	key := QuoteFileKey(tpaID, employerID, submissionID, fileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return interfaces.StoredFile{}, &interfaces.StorageError{Op: "upload", Key: key, Err: err}
	}

	url, err := s.SignedURL(ctx, key, 0)
	if err != nil {
		return interfaces.StoredFile{}, err
	}

	log.Printf("[storage][s3] uploaded key=%s size=%d", key, len(data))
	return interfaces.StoredFile{Key: key, URL: url, SubmissionID: submissionID}, nil
}

func (s *S3Store) SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = interfaces.DefaultSignedURLTTL
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return "", &interfaces.StorageError{Op: "sign", Key: key, Err: err}
	}
	return req.URL, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &interfaces.StorageError{Op: "delete", Key: key, Err: err}
	}
	log.Printf("[storage][s3] deleted key=%s", key)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
