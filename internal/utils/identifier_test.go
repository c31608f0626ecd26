package utils

import (
	"encoding/json"
	"testing"

	"github.com/participa-tere/app-participa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIdentifierField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FieldMode
	}{
		{"empty string is CPF", "", FieldModeCPF},
		{"whitespace is CPF", "   ", FieldModeCPF},
		{"email", "maria@example.com", FieldModeEmail},
		{"masked CPF", "123.456.789-01", FieldModeCPF},
		{"bare digits", "12345678901", FieldModeCPF},
		{"partial CPF", "123.4", FieldModeCPF},
		{"single letter", "m", FieldModeEmail},
		{"at sign alone", "@", FieldModeEmail},
		{"digits with letter", "123a", FieldModeEmail},
		{"digits with slash fall back to email", "123/456", FieldModeEmail},
		{"digits with parentheses fall back to email", "(123)", FieldModeEmail},
		{"no-break space between digits", "123\u00a0456", FieldModeCPF},
		{"vertical tab between digits", "123\v456", FieldModeCPF},
		{"ideographic space alone", "\u3000", FieldModeCPF},
		{"masked CPF with trailing byte order mark", "529.982.247-25\ufeff", FieldModeCPF},
		{"zero width space falls back to email", "123\u200b456", FieldModeEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIdentifierField(tt.input), "ClassifyIdentifierField(%q)", tt.input)
		})
	}
}

func TestFieldMode_Text(t *testing.T) {
	assert.Equal(t, "cpf", FieldModeCPF.String())
	assert.Equal(t, "email", FieldModeEmail.String())
	assert.Equal(t, "FieldMode(7)", FieldMode(7).String())

	data, err := json.Marshal(struct {
		Mode FieldMode `json:"mode"`
	}{FieldModeCPF})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"cpf"}`, string(data))

	var decoded struct {
		Mode FieldMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"email"}`), &decoded))
	assert.Equal(t, FieldModeEmail, decoded.Mode)

	err = json.Unmarshal([]byte(`{"mode":"phone"}`), &decoded)
	assert.ErrorIs(t, err, models.ErrUnknownFieldMode)
	_, err = json.Marshal(struct{ Mode FieldMode }{FieldMode(7)})
	assert.Error(t, err)
}

func TestCheckIdentifier(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMode    FieldMode
		wantDisplay string
		wantValid   bool
		wantMessage string
	}{
		{
			name:        "blank input shows the CPF prompt",
			input:       "",
			wantMode:    FieldModeCPF,
			wantDisplay: "",
			wantMessage: MsgIdentifierCPFRequired,
		},
		{
			name:        "partial CPF is masked and flagged",
			input:       "1234",
			wantMode:    FieldModeCPF,
			wantDisplay: "123.4",
			wantMessage: MsgIdentifierCPFLength,
		},
		{
			name:        "complete CPF",
			input:       "52998224725",
			wantMode:    FieldModeCPF,
			wantDisplay: "529.982.247-25",
			wantValid:   true,
		},
		{
			name:        "complete CPF with bad checksum still passes the live length check",
			input:       "529.982.247-26",
			wantMode:    FieldModeCPF,
			wantDisplay: "529.982.247-26",
			wantValid:   true,
		},
		{
			name:        "extra digits are truncated in the display",
			input:       "529982247251",
			wantMode:    FieldModeCPF,
			wantDisplay: "529.982.247-25",
			wantMessage: MsgIdentifierCPFLength,
		},
		{
			name:        "partial email",
			input:       "maria@",
			wantMode:    FieldModeEmail,
			wantDisplay: "maria@",
			wantMessage: MsgIdentifierEmailInvalid,
		},
		{
			name:        "valid email",
			input:       "maria@example.com",
			wantMode:    FieldModeEmail,
			wantDisplay: "maria@example.com",
			wantValid:   true,
		},
		{
			name:        "CPF typed with no-break spaces",
			input:       "529\u00a0982\u00a0247\u00a025",
			wantMode:    FieldModeCPF,
			wantDisplay: "529.982.247-25",
			wantValid:   true,
		},
		{
			name:        "non CPF characters without letters",
			input:       "12/34",
			wantMode:    FieldModeEmail,
			wantDisplay: "12/34",
			wantMessage: MsgIdentifierEmailInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckIdentifier(tt.input)
			assert.Equal(t, tt.wantMode, got.Mode)
			assert.Equal(t, tt.wantDisplay, got.Display)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestCheckIdentifier_EmailModeHasNoDigits(t *testing.T) {
	got := CheckIdentifier("user123@example.com")
	assert.Equal(t, FieldModeEmail, got.Mode)
	assert.Empty(t, got.Digits)
}

func TestIdentifierLookupKey(t *testing.T) {
	mode, key := IdentifierLookupKey("  Maria@Example.com ")
	assert.Equal(t, FieldModeEmail, mode)
	assert.Equal(t, "maria@example.com", key)

	mode, key = IdentifierLookupKey(" 529.982.247-25 ")
	assert.Equal(t, FieldModeCPF, mode)
	assert.Equal(t, "52998224725", key)
}
