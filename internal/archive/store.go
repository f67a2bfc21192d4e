package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
)

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes one JSON object per stored lead to S3.
type Store struct {
	bucket   string
	prefix   string
	s3Client S3API
}

// NewStore creates an archive Store. It returns nil when bucket or client is missing.
func NewStore(s3Client S3API, bucket, prefix string) *Store {
	bucket = strings.TrimSpace(bucket)
	if s3Client == nil || bucket == "" {
		return nil
	}
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "leads/v1"
	}
	return &Store{bucket: bucket, prefix: prefix, s3Client: s3Client}
}

func (s *Store) Name() string { return "s3_archive" }

// Key returns the object key for a lead, partitioned by creation date.
func (s *Store) Key(lead *leads.Lead) string {
	created := lead.CreatedAt.UTC()
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return fmt.Sprintf("%s/by-date/%d/%02d/%02d/%s.json",
		s.prefix, created.Year(), created.Month(), created.Day(), lead.ID)
}

// Write archives the lead as JSON.
func (s *Store) Write(ctx context.Context, lead *leads.Lead) error {
	if lead == nil {
		return errors.New("archive: lead required")
	}
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("archive: marshal lead: %w", err)
	}

	key := s.Key(lead)
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("archive: s3 put %s: %w", key, err)
	}
	return nil
}
