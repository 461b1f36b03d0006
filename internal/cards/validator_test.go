package cards

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/businesscards/internal/entities"
)

func candidateWithPhoto(photo *string) entities.Candidate {
	return entities.Candidate{
		Name:        "John Doe",
		Gender:      "Male",
		DateOfBirth: entities.NewDate(1985, 5, 20),
		Email:       "john.doe@example.com",
		Phone:       "123-456-7890",
		Address:     "123 Main St",
		Photo:       photo,
	}
}

func photoOfSize(n int) string {
	return base64.StdEncoding.EncodeToString(make([]byte, n))
}

func TestValidate_NoPhoto(t *testing.T) {
	assert.NoError(t, Validate(candidateWithPhoto(nil)))
	assert.NoError(t, Validate(candidateWithPhoto(entities.StringPtr(""))))
}

func TestValidate_OtherFieldsPassThrough(t *testing.T) {
	c := entities.Candidate{Name: strings.Repeat("x", 500)}
	assert.NoError(t, Validate(c))
}

func TestValidate_PhotoSizes(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"small photo", 128, false},
		{"exactly the limit", MaxPhotoSizeBytes, false},
		{"one byte over", MaxPhotoSizeBytes + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(candidateWithPhoto(entities.StringPtr(photoOfSize(tt.size))))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, KindPhotoTooLarge, vErr.Kind)
		})
	}
}

func TestValidate_DataURIPrefix(t *testing.T) {
	photo := "data:image/png;base64," + photoOfSize(64)
	assert.NoError(t, Validate(candidateWithPhoto(&photo)))

	large := "data:image/jpeg;base64," + photoOfSize(MaxPhotoSizeBytes+10)
	err := Validate(candidateWithPhoto(&large))
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, KindPhotoTooLarge, vErr.Kind)
}

func TestValidate_InvalidEncoding(t *testing.T) {
	for _, photo := range []string{
		"not base64!",
		"data:image/png;base64,@@@@",
		"abc",
	} {
		t.Run(photo, func(t *testing.T) {
			err := Validate(candidateWithPhoto(entities.StringPtr(photo)))
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, KindInvalidPhotoEncoding, vErr.Kind)
			assert.True(t, IsClientError(err))
		})
	}
}

func TestIsBase64Photo(t *testing.T) {
	assert.True(t, IsBase64Photo("aGVsbG8="))
	assert.True(t, IsBase64Photo("data:text/plain;base64,aGVsbG8="))
	assert.False(t, IsBase64Photo("hello world"))
}

func TestStripDataURIPrefix(t *testing.T) {
	assert.Equal(t, "abcd", StripDataURIPrefix("data:image/png;base64,abcd"))
	assert.Equal(t, "abcd", StripDataURIPrefix("abcd"))
	assert.Equal(t, "b,c", StripDataURIPrefix("a,b,c"))
}

func TestIsClientError(t *testing.T) {
	structural := NewStructuralError(KindEmptyFile, "File is empty or missing", nil)
	assert.True(t, IsClientError(structural))
	assert.True(t, IsClientError(fmt.Errorf("import: %w", structural)))
	assert.True(t, IsClientError(&RecordError{Position: 3, Err: &ValidationError{Kind: KindPhotoTooLarge}}))
	assert.False(t, IsClientError(errors.New("disk full")))
	assert.False(t, IsClientError(ErrNotFound))
}

func TestRecordError_Message(t *testing.T) {
	err := &RecordError{Position: 4, Err: &ValidationError{Message: "Photo is not a valid base64 string."}}
	assert.Equal(t, "record 4: Photo is not a valid base64 string.", err.Error())
}
