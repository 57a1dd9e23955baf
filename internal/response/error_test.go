package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrCode
	}{
		{"nil", nil, ""},
		{"direct", NotFound("student", "1"), ErrNotFound},
		{"wrapped", fmt.Errorf("add: %w", DuplicateID("grade", "10")), ErrDuplicateID},
		{"foreign", errors.New("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("delete: %w", NotFound("teacher", "7"))
	assert.ErrorIs(t, err, NotFound("", ""))
	assert.NotErrorIs(t, err, Cancelled("", ""))
}

func TestError_Message(t *testing.T) {
	err := &Error{
		Code:   ErrValidation,
		Fields: map[string]string{"phone": "phone is required", "name": "name is required"},
	}
	assert.Equal(t, "Validation failed. Please check your input.; name: name is required; phone: phone is required", err.Error())

	assert.Equal(t, "Record not found. (student 42)", NotFound("student", "42").Error())

	cause := errors.New("disk full")
	p := Persistence(cause)
	assert.ErrorIs(t, p, cause)
	assert.Contains(t, p.Error(), "disk full")
}

func TestGetMessage_Unknown(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred.", GetMessage("NOPE"))
}
