package edgelist

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang/snappy"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/mmap"
)

// objectGetter is the subset of the S3 client used to fetch an edge list.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// newS3Client is replaced in tests.
var newS3Client = func(ctx context.Context, region string) (objectGetter, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// readCloser pairs a decoding reader with the closer of the stream under it.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (rc *readCloser) Close() error {
	return rc.closer.Close()
}

// Open returns the decoded byte stream of src. The caller must close it.
func Open(ctx context.Context, src Source) (io.ReadCloser, error) {
	raw, name, err := openRaw(ctx, src)
	if err != nil {
		return nil, err
	}

	if useSnappy(src.Compression, name) {
		return &readCloser{Reader: snappy.NewReader(raw), closer: raw}, nil
	}
	return raw, nil
}

// Load opens src, parses every line, and records a BLAKE2b-256 digest of the
// decoded input.
func Load(ctx context.Context, src Source) (*Result, error) {
	rc, err := Open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("edgelist: digest init: %w", err)
	}

	result, err := Parse(NewScanner(io.TeeReader(rc, hasher)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.URI, err)
	}
	result.Digest = hex.EncodeToString(hasher.Sum(nil))
	return result, nil
}

func openRaw(ctx context.Context, src Source) (io.ReadCloser, string, error) {
	if src.URI == "" {
		return nil, "", fmt.Errorf("%w: empty input path", ErrInputUnavailable)
	}

	loc, err := parseURI(src.URI)
	if err != nil {
		return nil, "", err
	}
	if loc.bucket != "" {
		body, err := openS3(ctx, loc.bucket, loc.key, src.S3Region)
		return body, loc.key, err
	}

	if src.UseMmap {
		body, err := openMmap(loc.path)
		return body, loc.path, err
	}

	f, err := os.Open(loc.path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return f, loc.path, nil
}

// location is either a local path or an S3 bucket/key pair.
type location struct {
	path   string
	bucket string
	key    string
}

// parseURI resolves plain paths, file:// URIs and s3://bucket/key URIs.
func parseURI(uri string) (location, error) {
	if !strings.Contains(uri, "://") {
		return location{path: uri}, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return location{}, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	switch u.Scheme {
	case "s3":
		loc := location{bucket: u.Host, key: strings.TrimPrefix(u.Path, "/")}
		if loc.bucket == "" || loc.key == "" {
			return location{}, fmt.Errorf("%w: s3 uri %q needs bucket and key", ErrInputUnavailable, uri)
		}
		return loc, nil
	case "file":
		if u.Path == "" {
			return location{}, fmt.Errorf("%w: file uri %q has no path", ErrInputUnavailable, uri)
		}
		return location{path: u.Path}, nil
	default:
		return location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func openS3(ctx context.Context, bucket, key, region string) (io.ReadCloser, error) {
	client, err := newS3Client(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("%w: s3 client: %v", ErrInputUnavailable, err)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: s3://%s/%s: %v", ErrInputUnavailable, bucket, key, err)
	}
	return out.Body, nil
}

func openMmap(path string) (io.ReadCloser, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return &readCloser{
		Reader: io.NewSectionReader(r, 0, int64(r.Len())),
		closer: r,
	}, nil
}

func useSnappy(c Compression, name string) bool {
	switch c {
	case CompressionSnappy:
		return true
	case CompressionNone:
		return false
	default:
		return strings.HasSuffix(name, ".sz")
	}
}
