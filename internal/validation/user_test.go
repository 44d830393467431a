package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid email", email: "alice@example.com"},
		{name: "valid email with plus", email: "alice+feed@example.co.uk"},
		{name: "empty email", email: "", wantErr: true, errMsg: "email is missing"},
		{name: "missing at", email: "alice.example.com", wantErr: true, errMsg: "email is not valid"},
		{name: "display name is rejected", email: "Alice <alice@example.com>", wantErr: true, errMsg: "email is not valid"},
		{name: "no domain dot", email: "alice@localhost", wantErr: true, errMsg: "email is not valid"},
		{name: "too long", email: strings.Repeat("a", 250) + "@example.com", wantErr: true, errMsg: "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{name: "strong password", password: "Correct-Horse-42"},
		{name: "empty", password: "", wantErr: true, errMsg: "password is missing"},
		{name: "too short", password: "Sh0rt!", wantErr: true, errMsg: "at least 12 characters"},
		{name: "no special characters", password: "CorrectHorse42", wantErr: true, errMsg: "special characters"},
		{name: "no digits", password: "Correct-Horse-!", wantErr: true, errMsg: "numbers"},
		{name: "no capitals", password: "correct-horse-42", wantErr: true, errMsg: "capital letters"},
		{name: "longer than bcrypt accepts", password: "Aa1!" + strings.Repeat("x", 80), wantErr: true, errMsg: "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "lowercase", username: "alice"},
		{name: "mixed case with digits", username: "Alice_Smith42"},
		{name: "with dot", username: "alice.smith"},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "al", wantErr: true},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLen+1), wantErr: true},
		{name: "with space", username: "alice smith", wantErr: true},
		{name: "cyrillic", username: "алиса", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRealName(t *testing.T) {
	assert.NoError(t, ValidateRealName("Алиса Смит"))
	assert.Error(t, ValidateRealName("   "))
	assert.Error(t, ValidateRealName(strings.Repeat("я", MaxRealNameLen+1)))
	assert.Error(t, ValidateRealName("Alice\x00Smith"))
}

func TestValidateIdentity(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "canonical uuid", id: id},
		{name: "uppercase uuid", id: strings.ToUpper(id)},
		{name: "empty", id: "", wantErr: true},
		{name: "not a uuid", id: "1; DROP TABLE users", wantErr: true},
		{name: "urn form", id: "urn:uuid:" + id, wantErr: true},
		{name: "braced form", id: "{" + id + "}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentity(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
