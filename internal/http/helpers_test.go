package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/businesscards/internal/cards"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestParseIDParam_Negative(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "-1"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("lookup: %w", cards.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "Business card not found",
		},
		{
			name:       "validation",
			err:        &cards.ValidationError{Kind: cards.KindPhotoTooLarge, Message: "Photo exceeds maximum allowed size of 1 MB."},
			wantStatus: http.StatusBadRequest,
			wantError:  "Photo exceeds maximum allowed size of 1 MB.",
			wantCode:   "PhotoTooLarge",
		},
		{
			name:       "structural",
			err:        cards.NewStructuralError(cards.KindUnsupportedFormat, "Unsupported file format. Only CSV or XML are allowed.", nil),
			wantStatus: http.StatusBadRequest,
			wantError:  "Unsupported file format. Only CSV or XML are allowed.",
			wantCode:   "UnsupportedFormat",
		},
		{
			name: "record",
			err: &cards.RecordError{Position: 3, Err: &cards.ValidationError{
				Kind: cards.KindPhotoTooLarge, Message: "Photo exceeds maximum allowed size of 1 MB.",
			}},
			wantStatus: http.StatusBadRequest,
			wantError:  "record 3: Photo exceeds maximum allowed size of 1 MB.",
			wantCode:   "PhotoTooLarge",
		},
		{
			name:       "internal",
			err:        errors.New("database is locked"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "An unexpected error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondServiceError(c, tt.err, "test")

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestRespondServiceError_Details(t *testing.T) {
	t.Run("record position", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondServiceError(c, &cards.RecordError{Position: 2, Err: &cards.ValidationError{Kind: cards.KindInvalidPhotoEncoding}}, "test")

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		details := resp["details"].(map[string]any)
		assert.Equal(t, float64(2), details["position"])
	})

	t.Run("internal error text", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondServiceError(c, errors.New("boom"), "test")

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "boom", resp["details"])
	})

	t.Run("structural cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondServiceError(c, cards.NewStructuralError(cards.KindInvalidXMLFormat, "Invalid XML format", errors.New("unexpected EOF")), "test")

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid XML format", resp.Error)
		assert.Equal(t, "unexpected EOF", resp.Details)
	})
}
