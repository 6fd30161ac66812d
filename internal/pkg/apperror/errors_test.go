package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCauseAndMatchesSentinel(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(cause, ErrCodeConflict, ErrUsernameTaken.Message)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.True(t, IsConflict(err))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"conflict", ErrUsernameTaken, http.StatusBadRequest, ErrUsernameTaken.Message},
		{"validation", Validation(errors.New("тема обязательна")), http.StatusBadRequest, "тема обязательна"},
		{"unauthorized", ErrInvalidCredentials, http.StatusUnauthorized, ErrInvalidCredentials.Message},
		{"not found wrapped", fmt.Errorf("handler: %w", ErrProposalNotFound), http.StatusNotFound, ErrProposalNotFound.Message},
		{"export", New(ErrCodeExportFailed, "не удалось сформировать документ"), http.StatusInternalServerError, "не удалось сформировать документ"},
		{"foreign", errors.New("pq: connection reset"), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Resolve(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCodeOf_NonAppError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("x")))
	assert.False(t, IsNotFound(nil))
}
