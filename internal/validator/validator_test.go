package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	ID     string `json:"id" validate:"notblank"`
	Gender string `json:"gender" validate:"required,oneof=M F O"`
	Score  int    `json:"score" validate:"min=0,max=100"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		in     sample
		fields []string
	}{
		{"valid", sample{ID: "1", Gender: "M", Score: 90}, nil},
		{"blank id", sample{ID: "   ", Gender: "F"}, []string{"id"}},
		{"bad gender", sample{ID: "1", Gender: "X"}, []string{"gender"}},
		{"everything wrong", sample{Score: 101}, []string{"id", "gender", "score"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Struct(tt.in)
			if tt.fields == nil {
				assert.Nil(t, got)
				return
			}
			assert.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestStruct_NotBlankMessage(t *testing.T) {
	got := Struct(sample{ID: "", Gender: "O"})
	assert.Equal(t, "id must not be blank", got["id"])
}

func TestVar(t *testing.T) {
	assert.Empty(t, Var("id", "5001", "numeric"))
	assert.NotEmpty(t, Var("id", "50a1", "numeric"))
	assert.NotEmpty(t, Var("name", "  ", "notblank"))
}

func TestTranslateErrors_NonValidation(t *testing.T) {
	got := TranslateErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"detail": "boom"}, got)
}
