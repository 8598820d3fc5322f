package entity

import (
	"strings"
	"testing"
	"time"

	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *AddedVehicleRequest {
	return &AddedVehicleRequest{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		AddedBy:   uuid.New(),
		Purpose:   PurposeServiceBooking,
		Status:    StatusPending,
		Priority:  PriorityMedium,
		ContactInfo: ContactInfo{
			Phone:                  "+94771234567",
			PreferredContactMethod: ContactPhone,
		},
		Metadata: RequestMetadata{Source: SourceWeb},
		IsActive: true,
		Version:  1,
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}

	return fields
}

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},
		{StatusActive, StatusPending, false},
		{StatusCompleted, StatusCancelled, true},
		{StatusCompleted, StatusActive, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAddedVehicleRequest_IsOpen(t *testing.T) {
	req := validRequest()
	assert.True(t, req.IsOpen())

	req.Status = StatusActive
	assert.True(t, req.IsOpen())

	req.Status = StatusCompleted
	assert.False(t, req.IsOpen())

	req.Status = StatusPending
	req.IsActive = false
	assert.False(t, req.IsOpen())
}

func TestAddedVehicleRequest_Validate(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name            string
		mutate          func(r *AddedVehicleRequest)
		scheduleChanged bool
		wantFields      []string
	}{
		{
			name:   "valid",
			mutate: func(*AddedVehicleRequest) {},
		},
		{
			name:       "unknown purpose",
			mutate:     func(r *AddedVehicleRequest) { r.Purpose = "PARKING" },
			wantFields: []string{"purpose"},
		},
		{
			name:       "unknown priority",
			mutate:     func(r *AddedVehicleRequest) { r.Priority = "CRITICAL" },
			wantFields: []string{"priority"},
		},
		{
			name:       "notes too long",
			mutate:     func(r *AddedVehicleRequest) { r.Notes = strings.Repeat("a", MaxNotesLength+1) },
			wantFields: []string{"notes"},
		},
		{
			name:       "negative cost",
			mutate:     func(r *AddedVehicleRequest) { r.ServiceDetails.EstimatedCost = -1 },
			wantFields: []string{"serviceDetails.estimatedCost"},
		},
		{
			name: "bad contact",
			mutate: func(r *AddedVehicleRequest) {
				r.ContactInfo.Phone = "12ab"
				r.ContactInfo.Email = "not-an-email"
			},
			wantFields: []string{"contactInfo.phone", "contactInfo.email"},
		},
		{
			name:       "inspection without address",
			mutate:     func(r *AddedVehicleRequest) { r.Purpose = PurposeInspection },
			wantFields: []string{"location.address"},
		},
		{
			name: "repair with address",
			mutate: func(r *AddedVehicleRequest) {
				r.Purpose = PurposeRepairRequest
				r.Location.Address = "12 Galle Road"
			},
		},
		{
			name:            "new past schedule",
			mutate:          func(r *AddedVehicleRequest) { r.ScheduledDate = &past },
			scheduleChanged: true,
			wantFields:      []string{"scheduledDate"},
		},
		{
			name:   "stored past schedule",
			mutate: func(r *AddedVehicleRequest) { r.ScheduledDate = &past },
		},
		{
			name:            "new future schedule",
			mutate:          func(r *AddedVehicleRequest) { r.ScheduledDate = &future },
			scheduleChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := req.Validate(now, tt.scheduleChanged)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.ElementsMatch(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestAddedVehicleRequest_Clone(t *testing.T) {
	when := time.Now()
	by := uuid.New()
	req := validRequest()
	req.ScheduledDate = &when
	req.Tracking.CompletedBy = &by

	c := req.Clone()
	require.NotSame(t, req, c)
	assert.Equal(t, req, c)

	*c.ScheduledDate = when.Add(time.Hour)
	*c.Tracking.CompletedBy = uuid.New()
	assert.Equal(t, when, *req.ScheduledDate)
	assert.Equal(t, by, *req.Tracking.CompletedBy)

	var nilReq *AddedVehicleRequest
	assert.Nil(t, nilReq.Clone())
}

func TestParseSourceChannel(t *testing.T) {
	assert.Equal(t, SourceMobile, ParseSourceChannel(" mobile "))
	assert.Equal(t, SourceAdminPanel, ParseSourceChannel("ADMIN_PANEL"))
	assert.Equal(t, SourceWeb, ParseSourceChannel(""))
	assert.Equal(t, SourceWeb, ParseSourceChannel("kiosk"))
}

func TestPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityUrgent.Rank())
	assert.Zero(t, Priority("NONE").Rank())
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	type input struct {
		VehicleID uuid.UUID `json:"vehicleId" validate:"required"`
	}

	err := ValidateStruct(&input{})
	assert.Equal(t, []string{"vehicleId"}, fieldsOf(t, err))

	assert.NoError(t, ValidateStruct(&input{VehicleID: uuid.New()}))
}

func TestNewActor_NormalizesDirectoryRecord(t *testing.T) {
	actor := NewActor(&UserSummary{ID: uuid.New(), NIC: " 856789012v ", Role: "ADMIN"})

	assert.Equal(t, "856789012V", actor.NIC)
	assert.True(t, actor.IsAdmin())

	actor = NewActor(&UserSummary{ID: uuid.New(), Role: "superuser"})
	assert.Equal(t, RoleUser, actor.Role)
	assert.False(t, actor.IsAdmin())
}
