package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/socialnet/internal/client/iocli"
)

func cliWithPasswords(input string, p Passwords) *Cli {
	c := New(iocli.New(strings.NewReader(input), &bytes.Buffer{}), "test")
	c.opts.passwords = p
	return c
}

func writePasswordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestGetPassword_FromEnvVar проверяет чтение пароля из переменной окружения
func TestGetPassword_FromEnvVar(t *testing.T) {
	t.Setenv(PasswordEnv, "env_password_123")

	password, err := cliWithPasswords("", Passwords{}).getPassword("Password: ", false)

	require.NoError(t, err)
	assert.Equal(t, "env_password_123", password)
}

// TestGetPassword_Priority проверяет приоритет источников:
// env > файл > параметр > ввод
func TestGetPassword_Priority(t *testing.T) {
	file := writePasswordFile(t, "file_password")

	tests := []struct {
		name      string
		env       string
		passwords Passwords
		input     string
		want      string
	}{
		{name: "env wins", env: "env_password", passwords: Passwords{FromFile: file, FromArgs: "cli_password"}, input: "typed\n", want: "env_password"},
		{name: "file over args", passwords: Passwords{FromFile: file, FromArgs: "cli_password"}, input: "typed\n", want: "file_password"},
		{name: "args over prompt", passwords: Passwords{FromArgs: "cli_password"}, input: "typed\n", want: "cli_password"},
		{name: "prompt fallback", input: "typed\n", want: "typed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PasswordEnv, tt.env)

			password, err := cliWithPasswords(tt.input, tt.passwords).getPassword("Password: ", false)

			require.NoError(t, err)
			assert.Equal(t, tt.want, password)
		})
	}
}

// TestGetPassword_FileWithWhitespace проверяет что whitespace обрезается
func TestGetPassword_FileWithWhitespace(t *testing.T) {
	t.Setenv(PasswordEnv, "")
	file := writePasswordFile(t, "  password_with_spaces  \n\n")

	password, err := cliWithPasswords("", Passwords{FromFile: file}).getPassword("Password: ", false)

	require.NoError(t, err)
	assert.Equal(t, "password_with_spaces", password)
}

func TestGetPassword_Errors(t *testing.T) {
	t.Setenv(PasswordEnv, "")

	tests := []struct {
		name      string
		passwords Passwords
		input     string
		confirm   bool
		wantErr   string
	}{
		{name: "empty file", passwords: Passwords{FromFile: writePasswordFile(t, "\n")}, wantErr: "password file is empty"},
		{name: "missing file", passwords: Passwords{FromFile: "/nonexistent/file/path.txt"}, wantErr: "failed to read password file"},
		{name: "empty prompt", input: "\n", wantErr: "password cannot be empty"},
		{name: "no input", input: "", wantErr: "failed to read password"},
		{name: "confirmation mismatch", input: "first\nsecond\n", confirm: true, wantErr: "passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := cliWithPasswords(tt.input, tt.passwords).getPassword("Password: ", tt.confirm)

			require.Error(t, err)
			assert.Empty(t, password)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetPassword_Confirmed(t *testing.T) {
	t.Setenv(PasswordEnv, "")

	password, err := cliWithPasswords("same\nsame\n", Passwords{}).getPassword("Password: ", true)

	require.NoError(t, err)
	assert.Equal(t, "same", password)
}
