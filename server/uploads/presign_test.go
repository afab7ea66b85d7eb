package uploads

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newTestPresigner() *Presigner {
	return &Presigner{
		cfg: Config{
			Bucket:        "uploads",
			PublicBaseURL: "https://cdn.test",
		},
		validate: validator.New(),
	}
}

func TestValidate(t *testing.T) {
	p := newTestPresigner()

	tests := []struct {
		name        string
		rq          Request
		expectedErr error
	}{
		{
			name: "avatar jpeg under limit",
			rq:   Request{Category: CategoryAvatar, Filename: "me.jpg", ContentType: "image/jpeg", Size: 1 << 20},
		},
		{
			name: "group photo at limit",
			rq:   Request{Category: CategoryGroupPhoto, Filename: "logo.png", ContentType: "image/png", Size: 2 << 20},
		},
		{
			name: "hero between avatar and hero limits",
			rq:   Request{Category: CategoryHero, Filename: "hero.webp", ContentType: "image/webp", Size: 4 << 20},
		},
		{
			name:        "avatar too large",
			rq:          Request{Category: CategoryAvatar, Filename: "me.jpg", ContentType: "image/jpeg", Size: 3 << 20},
			expectedErr: ErrTooLarge,
		},
		{
			name:        "hero too large",
			rq:          Request{Category: CategoryHero, Filename: "hero.png", ContentType: "image/png", Size: 6 << 20},
			expectedErr: ErrTooLarge,
		},
		{
			name:        "svg not allowed",
			rq:          Request{Category: CategoryAvatar, Filename: "me.svg", ContentType: "image/svg+xml", Size: 1 << 10},
			expectedErr: ErrUnsupportedType,
		},
		{
			name:        "pdf not allowed",
			rq:          Request{Category: CategoryHero, Filename: "doc.pdf", ContentType: "application/pdf", Size: 1 << 10},
			expectedErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(tt.rq)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestValidateRejectsMalformedRequests(t *testing.T) {
	p := newTestPresigner()

	assert.Error(t, p.Validate(Request{}))
	assert.Error(t, p.Validate(Request{Category: "passport", Filename: "x.png", ContentType: "image/png", Size: 1}))
	assert.Error(t, p.Validate(Request{Category: CategoryAvatar, Filename: "x.png", ContentType: "image/png", Size: -1}))
	assert.Error(t, p.Validate(Request{Category: CategoryAvatar, ContentType: "image/png", Size: 1}))
}
