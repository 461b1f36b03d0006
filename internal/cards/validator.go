package cards

import (
	"encoding/base64"
	"strings"

	"github.com/mrlokans/businesscards/internal/entities"
)

// MaxPhotoSizeBytes is the largest decoded photo accepted.
const MaxPhotoSizeBytes = 1 * 1024 * 1024

// Validate checks a candidate before it may be stored. Only the photo is
// checked; length limits on the other fields belong to the storage schema.
func Validate(c entities.Candidate) error {
	if !c.HasPhoto() {
		return nil
	}

	data, err := decodePhoto(*c.Photo)
	if err != nil {
		return &ValidationError{
			Kind:    KindInvalidPhotoEncoding,
			Message: "Photo is not a valid base64 string.",
		}
	}
	if len(data) > MaxPhotoSizeBytes {
		return &ValidationError{
			Kind:    KindPhotoTooLarge,
			Message: "Photo exceeds maximum allowed size of 1 MB.",
		}
	}
	return nil
}

// IsBase64Photo reports whether photo, after stripping a data-URI prefix,
// is valid standard base64.
func IsBase64Photo(photo string) bool {
	_, err := decodePhoto(photo)
	return err == nil
}

// StripDataURIPrefix drops everything up to and including the first comma.
func StripDataURIPrefix(photo string) string {
	if i := strings.IndexByte(photo, ','); i >= 0 {
		return photo[i+1:]
	}
	return photo
}

func decodePhoto(photo string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(StripDataURIPrefix(photo))
}
