package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateArticleDTO_Validate(t *testing.T) {
	tests := []struct {
		name   string
		in     CreateArticleDTO
		fields map[string]string
	}{
		{name: "ok", in: CreateArticleDTO{Title: "Hello world", Content: "body"}},
		{name: "ok published", in: CreateArticleDTO{Title: "Hello world", Content: "body", Published: ptr(true)}},
		{
			name:   "short title",
			in:     CreateArticleDTO{Title: "Hey", Content: "body"},
			fields: map[string]string{"title": "min=5"},
		},
		{
			name:   "missing everything",
			in:     CreateArticleDTO{},
			fields: map[string]string{"title": "required", "content": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Bind(nil)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestUpdateArticleDTO_PartialRules(t *testing.T) {
	assert.NoError(t, (&UpdateArticleDTO{}).Bind(nil))
	assert.NoError(t, (&UpdateArticleDTO{Published: ptr(false)}).Bind(nil))

	err := (&UpdateArticleDTO{Title: ptr("abc")}).Bind(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "min=5", verr.Fields["title"])
}

func TestUpdateArticleDTO_Changes(t *testing.T) {
	d := UpdateArticleDTO{Published: ptr(true)}
	assert.Equal(t, map[string]any{"published": true}, d.Changes())

	d = UpdateArticleDTO{Title: ptr("Brand new title"), Content: ptr("c")}
	assert.Equal(t, map[string]any{"title": "Brand new title", "content": "c"}, d.Changes())

	assert.Empty(t, (&UpdateArticleDTO{}).Changes())
}

func TestCreateUserDTO_Validate(t *testing.T) {
	assert.NoError(t, (&CreateUserDTO{Name: "Ann", Email: "ann@example.com", Password: "secret1"}).Bind(nil))

	err := (&CreateUserDTO{Name: "", Email: "not-an-email", Password: "123"}).Bind(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"name":     "required",
		"email":    "email",
		"password": "min=6",
	}, verr.Fields)
	assert.Equal(t, "validation failed: email: email, name: required, password: min=6", verr.Error())
}

func TestUpdateUserDTO(t *testing.T) {
	assert.NoError(t, (&UpdateUserDTO{}).Bind(nil))

	err := (&UpdateUserDTO{Email: ptr("bad")}).Bind(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Fields["email"])

	d := UpdateUserDTO{Name: ptr("Bob")}
	assert.Equal(t, map[string]any{"name": "Bob"}, d.Changes())
}

func TestUserDTO_PasswordLongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("a", 73)

	err := (&CreateUserDTO{Name: "Ann", Email: "ann@example.com", Password: long}).Bind(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"password": "max=72"}, verr.Fields)

	err = (&UpdateUserDTO{Password: ptr(long)}).Bind(nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max=72", verr.Fields["password"])

	assert.NoError(t, (&CreateUserDTO{Name: "Ann", Email: "ann@example.com", Password: strings.Repeat("a", 72)}).Bind(nil))

	// 40 кириллических символов укладываются в max=72, но занимают 80 байт
	err = (&CreateUserDTO{Name: "Ann", Email: "ann@example.com", Password: strings.Repeat("ж", 40)}).Bind(nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "maxbytes=72", verr.Fields["password"])
}
