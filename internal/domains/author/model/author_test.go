package model

import (
	"encoding/json"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/shared"
)

func TestCreateAuthorRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAuthorRequest
		wantErr bool
	}{
		{name: "valid", req: CreateAuthorRequest{Name: "Test Author"}},
		{name: "cyrillic at limit", req: CreateAuthorRequest{Name: strings.Repeat("Ж", MaxNameLength)}},
		{name: "missing name", req: CreateAuthorRequest{}, wantErr: true},
		{name: "blank name", req: CreateAuthorRequest{Name: "   "}, wantErr: true},
		{name: "too long", req: CreateAuthorRequest{Name: strings.Repeat("a", MaxNameLength+1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fieldErrs validation.Errors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldErrs, "name")
		})
	}
}

func TestUpdateAuthorRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateAuthorRequest{}.Validate())
	assert.NoError(t, UpdateAuthorRequest{Bio: shared.Some[*string](nil)}.Validate())
	assert.NoError(t, UpdateAuthorRequest{Name: shared.Some("New Name")}.Validate())
	assert.Error(t, UpdateAuthorRequest{Name: shared.Some("")}.Validate())
	assert.Error(t, UpdateAuthorRequest{Name: shared.Some(" ")}.Validate())
}

func TestUpdateAuthorRequestDecoding(t *testing.T) {
	var req UpdateAuthorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bio":"новая биография"}`), &req))

	assert.False(t, req.Name.Set)
	assert.True(t, req.Bio.Set)
	require.NotNil(t, req.Bio.Value)
	assert.Equal(t, "новая биография", *req.Bio.Value)
	assert.False(t, req.IsEmpty())
	assert.True(t, UpdateAuthorRequest{}.IsEmpty())
}

func TestToResponseNeverNullBookIDs(t *testing.T) {
	a := &Author{ID: 1, Name: "Test Author"}

	out, err := json.Marshal(a.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Test Author","bio":null,"book_ids":[]}`, string(out))

	a.BookIDs = []int64{1, 2}
	assert.Equal(t, []int64{1, 2}, a.ToResponse().BookIDs)
}
