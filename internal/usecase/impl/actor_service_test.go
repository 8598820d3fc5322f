package impl

import (
	"context"
	"testing"

	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	mockService "autoconnect/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorService_ResolveActor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(*mockService.MockDirectoryService)
		wantActor *entity.Actor
		wantErr   error
		anyErr    bool
	}{
		{
			name: "directory record is authoritative",
			setupMock: func(m *mockService.MockDirectoryService) {
				m.EXPECT().GetUserByID(ctx, userID).Return(&entity.UserSummary{
					ID:   userID,
					Name: "Kamala",
					NIC:  " 856789012v",
					Role: "ADMIN",
				}, nil).Once()
			},
			wantActor: &entity.Actor{
				ID:   userID,
				Name: "Kamala",
				NIC:  "856789012V",
				Role: entity.RoleAdmin,
			},
		},
		{
			name: "unknown user",
			setupMock: func(m *mockService.MockDirectoryService) {
				m.EXPECT().GetUserByID(ctx, userID).Return(nil, service.ErrUserNotFound).Once()
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name: "directory failure",
			setupMock: func(m *mockService.MockDirectoryService) {
				m.EXPECT().GetUserByID(ctx, userID).Return(nil, errors.New("timeout")).Once()
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := mockService.NewMockDirectoryService(t)
			tt.setupMock(directory)

			svc := NewActorService(directory, newDiscardLogger())
			actor, err := svc.ResolveActor(ctx, userID)

			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			case tt.anyErr:
				require.Error(t, err)
				assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantActor, actor)
			}
		})
	}
}
