package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"id": "abc"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","data":{"id":"abc"}}`, string(raw))
}

func TestError(t *testing.T) {
	resp := Error("something broke")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestValidationError(t *testing.T) {
	type req struct {
		Name     string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	tests := []struct {
		name    string
		input   req
		wantMsg string
	}{
		{
			name:    "всё пусто",
			input:   req{},
			wantMsg: "field Name is a required field, field Email is a required field, field Password is a required field",
		},
		{
			name:    "некорректная почта",
			input:   req{Name: "a", Email: "not-an-email", Password: "12345678"},
			wantMsg: "field Email must be a valid email address",
		},
		{
			name:    "короткий пароль",
			input:   req{Name: "a", Email: "a@b.com", Password: "123"},
			wantMsg: "field Password is too short",
		},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
