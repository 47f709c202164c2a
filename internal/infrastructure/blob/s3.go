package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"job-platform/internal/config"
	"job-platform/internal/domain/resume"
)

const (
	metaKeyUsername = "username"
	metaKeySkills   = "extracted-skills"
	metaKeySummary  = "resume-summary"
)

// S3Store keeps resume bytes in an S3-compatible bucket. The sidecar
// metadata (owner, normalized skills, summary) travels as object metadata
// and is read back with HeadObject.
type S3Store struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	log       logrus.FieldLogger
}

func NewS3Store(ctx context.Context, cfg config.BlobConfig, log logrus.FieldLogger) (*S3Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("blob: empty bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		keyPrefix: strings.Trim(cfg.KeyPrefix, "/"),
		log:       log,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, content []byte, contentType string, meta resume.Metadata) (string, error) {
	key := path.Join(s.keyPrefix, uuid.NewString()+".pdf")

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			metaKeyUsername: meta.Username,
			metaKeySkills:   strings.Join(meta.Skills, ","),
			metaKeySummary:  meta.Summary,
		},
	})
	if err != nil {
		return "", err
	}

	if s.log != nil {
		s.log.WithFields(logrus.Fields{"key": key, "bytes": len(content)}).Info("resume blob stored")
	}
	return key, nil
}

func (s *S3Store) Get(ctx context.Context, id string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, "", resume.ErrNotFound
		}
		return nil, "", err
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", err
	}
	return b, aws.ToString(out.ContentType), nil
}

func (s *S3Store) GetMetadata(ctx context.Context, id string) (resume.Metadata, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		if isNotFound(err) {
			return resume.Metadata{}, resume.ErrNotFound
		}
		return resume.Metadata{}, err
	}

	meta := resume.Metadata{
		Username: out.Metadata[metaKeyUsername],
		Summary:  out.Metadata[metaKeySummary],
	}
	if raw := out.Metadata[metaKeySkills]; raw != "" {
		meta.Skills = strings.Split(raw, ",")
	}
	return meta, nil
}

func (s *S3Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	return err
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
