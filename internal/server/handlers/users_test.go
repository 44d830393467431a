package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
	"github.com/iudanet/socialnet/pkg/api"
)

func TestUserHandler_Me(t *testing.T) {
	tests := []struct {
		serviceErr error
		name       string
		userID     string
		wantStatus int
	}{
		{name: "success", userID: "user-1", wantStatus: http.StatusOK},
		{name: "no identity", wantStatus: http.StatusUnauthorized},
		{name: "user deleted", userID: "user-1", serviceErr: fmt.Errorf("failed to get user: %w", storage.ErrUserNotFound), wantStatus: http.StatusNotFound},
		{name: "storage failure", userID: "user-1", serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &UserServiceMock{
				CurrentUserFunc: func(ctx context.Context, userID string) (*models.User, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return testUser(), nil
				},
			}
			handler := NewUserHandler(setupTestLogger(), svc)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.userID != "" {
				req = req.WithContext(WithIdentity(req.Context(), tt.userID, []string{models.RoleUser}))
			}
			w := httptest.NewRecorder()
			handler.Me(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body api.UserResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, testUser().ID, body.User.ID)
			assert.Equal(t, []string{models.RoleUser}, body.User.Roles)
			require.Len(t, svc.CurrentUserCalls(), 1)
			assert.Equal(t, tt.userID, svc.CurrentUserCalls()[0].UserID)
		})
	}
}

func TestContextIdentity(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserID(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, "user-1", []string{"user", "admin"})
	userID, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)

	roles, ok := GetUserRoles(ctx)
	assert.True(t, ok)
	assert.Equal(t, []string{"user", "admin"}, roles)
}
