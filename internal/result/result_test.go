package result

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	res := Ok("payload")

	assert.True(t, res.Success)
	assert.Equal(t, "payload", res.Data)
	assert.Empty(t, res.ErrorMessage)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestFail(t *testing.T) {
	res := Fail[int]("boom", http.StatusInternalServerError)

	assert.False(t, res.Success)
	assert.Zero(t, res.Data)
	assert.Equal(t, "boom", res.ErrorMessage)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestFactoryStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		res  OperationResult[string]
		want int
	}{
		{"not found", NotFound[string]("missing"), http.StatusNotFound},
		{"bad request", BadRequest[string]("invalid"), http.StatusBadRequest},
		{"conflict", Conflict[string]("duplicate"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.res.Success)
			assert.Equal(t, tt.want, tt.res.StatusCode)
			assert.NotEmpty(t, tt.res.ErrorMessage)
		})
	}
}
