package uploads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	CategoryAvatar     = "avatar"
	CategoryGroupPhoto = "group-photo"
	CategoryHero       = "hero"
)

var (
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrTooLarge        = errors.New("file too large")

	// extensions doubles as the content type allow-list.
	extensions = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	}

	maxSizes = map[string]int64{
		CategoryAvatar:     2 << 20,
		CategoryGroupPhoto: 2 << 20,
		CategoryHero:       5 << 20,
	}
)

type Request struct {
	Category    string `json:"category" validate:"required,oneof=avatar group-photo hero"`
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

type Descriptor struct {
	UploadURL string    `json:"uploadUrl"`
	FinalURL  string    `json:"finalUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func New(ctx context.Context, cfg Config) (*Presigner, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Presigner{
		cfg:      cfg,
		presign:  s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		validate: validator.New(),
	}, nil
}

type Presigner struct {
	cfg      Config
	presign  *s3.PresignClient
	validate *validator.Validate
}

// Validate applies the category rules without touching object storage. A
// request that fails here never reaches S3.
func (p *Presigner) Validate(rq Request) error {
	if err := p.validate.Struct(rq); err != nil {
		return err
	}

	if _, ok := extensions[rq.ContentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rq.ContentType)
	}

	if maxSize := maxSizes[rq.Category]; rq.Size > maxSize {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit for %s uploads", ErrTooLarge, rq.Size, maxSize, rq.Category)
	}

	return nil
}

func (p *Presigner) Presign(ctx context.Context, rq Request) (*Descriptor, error) {
	if err := p.Validate(rq); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", rq.Category, uuid.NewString(), extensions[rq.ContentType])
	expiry := p.cfg.Expiry()

	presigned, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.cfg.Bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(rq.ContentType),
		ContentLength: aws.Int64(rq.Size),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &Descriptor{
		UploadURL: presigned.URL,
		FinalURL:  strings.TrimSuffix(p.cfg.PublicBaseURL, "/") + "/" + key,
		Key:       key,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}
