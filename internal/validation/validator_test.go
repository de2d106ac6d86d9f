package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuestbookRuleset() *Ruleset {
	return NewRuleset().
		Add("name", NotEmpty{}).
		Add("location", Optional{}).
		Add("message", NotEmpty{}).
		Add("email", EmailAddress{}).
		Add("terms", True{})
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       map[string]string
		wantOk      bool
		wantInvalid []string
	}{
		{
			name: "all fields valid",
			input: map[string]string{
				"name":    "Ann",
				"message": "Hi",
				"email":   "a@b.com",
				"terms":   "true",
			},
			wantOk: true,
		},
		{
			name: "missing required field",
			input: map[string]string{
				"message": "Hi",
				"email":   "a@b.com",
				"terms":   "1",
			},
			wantOk:      false,
			wantInvalid: []string{"name"},
		},
		{
			name: "invalid email and unchecked terms",
			input: map[string]string{
				"name":    "Ann",
				"message": "Hi",
				"email":   "not-an-address",
			},
			wantOk:      false,
			wantInvalid: []string{"email", "terms"},
		},
		{
			name: "whitespace only counts as empty",
			input: map[string]string{
				"name":    "   ",
				"message": "Hi",
				"email":   "a@b.com",
				"terms":   "on",
			},
			wantOk:      false,
			wantInvalid: []string{"name"},
		},
		{
			name:        "empty input fails every required field",
			input:       map[string]string{},
			wantOk:      false,
			wantInvalid: []string{"name", "message", "email", "terms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(newGuestbookRuleset())
			result, ok := v.Validate(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantOk, result.Ok())

			invalid := map[string]bool{}
			for field, fr := range result {
				if !fr.Valid {
					invalid[field] = true
					assert.NotEmpty(t, fr.Message, "invalid field %q must carry a message", field)
				}
			}
			require.Len(t, invalid, len(tt.wantInvalid))
			for _, field := range tt.wantInvalid {
				assert.True(t, invalid[field], "expected field %q to be invalid", field)
			}
		})
	}
}

func TestValidator_OptionalFieldAbsent(t *testing.T) {
	v := NewValidator(NewRuleset().Add("location", Optional{}))
	result, ok := v.Validate(map[string]string{})
	require.True(t, ok)
	fr, exists := result["location"]
	require.True(t, exists, "optional field must still appear in the result")
	assert.True(t, fr.Valid)
	assert.Empty(t, fr.Value)
}

func TestValidator_IgnoresUnknownFields(t *testing.T) {
	v := NewValidator(NewRuleset().Add("name", NotEmpty{}))
	result, ok := v.Validate(map[string]string{"name": "Ann", "extra": "ignored"})
	require.True(t, ok)
	assert.Len(t, result, 1)
	_, exists := result["extra"]
	assert.False(t, exists)
}

func TestValidator_TrimsValues(t *testing.T) {
	v := NewValidator(NewRuleset().Add("name", NotEmpty{}))
	result, ok := v.Validate(map[string]string{"name": "  Ann  "})
	require.True(t, ok)
	assert.Equal(t, "Ann", result["name"].Value)
}

func TestValidator_FirstFailingRuleWins(t *testing.T) {
	v := NewValidator(NewRuleset().Add("email", NotEmpty{}, EmailAddress{}))
	result, ok := v.Validate(map[string]string{"email": ""})
	require.False(t, ok)
	assert.Equal(t, "must not be empty", result["email"].Message)
}

func TestTrueRule(t *testing.T) {
	rule := True{}
	for _, ok := range []string{"1", "true", "on", "yes", "True", " ON "} {
		assert.NoError(t, rule.Check(ok), "value %q", ok)
	}
	for _, bad := range []string{"", "0", "false", "off", "nope"} {
		assert.Error(t, rule.Check(bad), "value %q", bad)
	}
}
