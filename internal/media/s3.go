package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Params struct {
	// Endpoint is set for S3 compatible storages (minio etc.), empty means AWS
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type S3Store struct {
	client s3API
	bucket string
}

func NewS3Store(ctx context.Context, params S3Params) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(params.Region),
		awsconfig.WithHTTPClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}
	if params.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(params.AccessKeyID, params.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if params.Endpoint != "" {
			o.BaseEndpoint = aws.String(params.Endpoint)
			// s3 compatible storages mostly need path style addressing
			o.UsePathStyle = true
		}
	})

	log.Infof("s3 media store: bucket [%s], endpoint [%s]", params.Bucket, params.Endpoint)
	return newS3StoreWithClient(client, params.Bucket), nil
}

func newS3StoreWithClient(client s3API, bucket string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
	}
}

func (s *S3Store) Save(ctx context.Context, content []byte, ownerID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "s3Store.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	handle := NewObjectName(ownerID)
	span.SetAttributes(attribute.String("media.handle", handle))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(handle),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return "", classifyS3Error(fmt.Errorf("put object [%s]: %w", handle, err))
	}

	log.Debugf("s3 store: saved [%s], %d bytes", handle, len(content))
	return handle, nil
}

func (s *S3Store) Read(ctx context.Context, handle string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "s3Store.read")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("media.handle", handle))

	if handle == "" {
		return nil, ErrInvalidHandle
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(handle),
	})
	if err != nil {
		return nil, classifyS3Error(fmt.Errorf("get object [%s]: %w", handle, err))
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			log.Warnf("s3 store: close body of [%s]: %s", handle, closeErr)
		}
	}()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object body: %s", ErrUnavailable, err)
	}
	return content, nil
}

// classifyS3Error maps missing objects to ErrNotFound and transient failures to ErrUnavailable.
func classifyS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return ErrNotFound
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch status := respErr.HTTPStatusCode(); {
		case status == http.StatusNotFound:
			return ErrNotFound
		case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %s", ErrUnavailable, err)
		default:
			return err
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return err
}
