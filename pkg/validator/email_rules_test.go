package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/validator"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{
			name:  "simple valid address",
			email: "user@domain.com",
			want:  true,
		},
		{
			name:  "plus tag and subdomain",
			email: "user+tag@sub.domain.co.uk",
			want:  true,
		},
		{
			name:  "dots underscores percent in local part",
			email: "first.last_name%test-1@example.org",
			want:  true,
		},
		{
			name:  "long tld",
			email: "user@example.technology",
			want:  true,
		},
		{
			name:  "missing tld",
			email: "invalid@domain",
			want:  false,
		},
		{
			name:  "empty string",
			email: "",
			want:  false,
		},
		{
			name:  "missing local part",
			email: "@domain.com",
			want:  false,
		},
		{
			name:  "missing domain",
			email: "user@.com",
			want:  false,
		},
		{
			name:  "single letter tld",
			email: "user@domain.c",
			want:  false,
		},
		{
			name:  "space in local part",
			email: "user name@domain.com",
			want:  false,
		},
		{
			name:  "no at sign",
			email: "userdomain.com",
			want:  false,
		},
		{
			name:  "trailing text after tld",
			email: "user@domain.com extra",
			want:  false,
		},
		{
			name:  "local part at 64 character limit",
			email: strings.Repeat("a", 64) + "@domain.com",
			want:  true,
		},
		{
			name:  "local part over 64 characters",
			email: strings.Repeat("a", 65) + "@domain.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ValidateEmail(tt.email))
		})
	}
}
