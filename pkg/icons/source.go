package icons

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/charm/internal/errors"
)

// Source loads icon overrides.
type Source interface {
	Load(ctx context.Context) (map[string]string, error)
}

// iconName returns the icon name for an .svg file name, or "" if it is not one.
func iconName(file string) string {
	base := path.Base(filepath.ToSlash(file))
	if !strings.EqualFold(path.Ext(base), ".svg") {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

// DirSource reads every *.svg file in a directory.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// Load implements Source.
func (s *DirSource) Load(ctx context.Context) (map[string]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, errors.New(errors.CodeIconSource).
			WithDetail("Could not read icon directory " + s.Dir).
			Wrap(err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		name := iconName(entry.Name())
		if name == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			return nil, errors.New(errors.CodeIconSource).Wrap(err)
		}
		out[name] = strings.TrimSpace(string(data))
	}
	return out, nil
}

// S3API is the subset of the S3 client used by S3Source.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source fetches *.svg objects stored under a bucket prefix.
//
// Example usage:
//
//	client := s3.New(s3.Options{Region: "eu-west-1"})
//	src := icons.NewS3Source(client, "design-assets", "icons/")
type S3Source struct {
	client S3API
	bucket string
	prefix string

	// MaxSize is the largest object accepted, in bytes.
	MaxSize int64
}

// NewS3Source creates an S3Source.
func NewS3Source(client S3API, bucket, prefix string) *S3Source {
	return &S3Source{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		MaxSize: 256 << 10,
	}
}

// Load implements Source.
func (s *S3Source) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)

	var token *string
	for {
		page, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(s.prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, errors.New(errors.CodeIconSource).
				WithDetail(fmt.Sprintf("Could not list s3://%s/%s", s.bucket, s.prefix)).
				Wrap(err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := iconName(key)
			if name == "" {
				continue
			}
			if s.MaxSize > 0 && aws.ToInt64(obj.Size) > s.MaxSize {
				continue
			}
			svg, err := s.fetch(ctx, key)
			if err != nil {
				return nil, err
			}
			out[name] = svg
		}

		if !aws.ToBool(page.IsTruncated) || page.NextContinuationToken == nil {
			break
		}
		token = page.NextContinuationToken
	}

	return out, nil
}

func (s *S3Source) fetch(ctx context.Context, key string) (string, error) {
	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", errors.New(errors.CodeIconSource).
			WithDetail(fmt.Sprintf("Could not fetch s3://%s/%s", s.bucket, key)).
			Wrap(err)
	}
	defer obj.Body.Close()

	var r io.Reader = obj.Body
	if s.MaxSize > 0 {
		r = io.LimitReader(obj.Body, s.MaxSize)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.New(errors.CodeIconSource).Wrap(err)
	}
	return strings.TrimSpace(string(data)), nil
}

// LoadAll loads every source in order; later sources override earlier ones.
func LoadAll(ctx context.Context, sources ...Source) (map[string]string, error) {
	out := make(map[string]string)
	for _, src := range sources {
		if src == nil {
			continue
		}
		set, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		out = Merge(out, set)
	}
	return out, nil
}
