package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Purpose is the business reason a vehicle is linked to a request.
type Purpose string

const (
	PurposeServiceBooking      Purpose = "SERVICE_BOOKING"
	PurposeInsuranceClaim      Purpose = "INSURANCE_CLAIM"
	PurposeMaintenanceSchedule Purpose = "MAINTENANCE_SCHEDULE"
	PurposeRepairRequest       Purpose = "REPAIR_REQUEST"
	PurposeInspection          Purpose = "INSPECTION"
	PurposeSaleListing         Purpose = "SALE_LISTING"
	PurposeRental              Purpose = "RENTAL"
	PurposeOther               Purpose = "OTHER"
)

// Purposes lists every purpose in declaration order.
var Purposes = []Purpose{
	PurposeServiceBooking,
	PurposeInsuranceClaim,
	PurposeMaintenanceSchedule,
	PurposeRepairRequest,
	PurposeInspection,
	PurposeSaleListing,
	PurposeRental,
	PurposeOther,
}

// IsValid checks if the Purpose is a valid enum value.
func (p Purpose) IsValid() bool {
	switch p {
	case PurposeServiceBooking, PurposeInsuranceClaim, PurposeMaintenanceSchedule, PurposeRepairRequest,
		PurposeInspection, PurposeSaleListing, PurposeRental, PurposeOther:
		return true
	}

	return false
}

// RequiresAddress reports whether work for this purpose happens on site,
// in which case the request must carry a location address.
func (p Purpose) RequiresAddress() bool {
	return p == PurposeInspection || p == PurposeRepairRequest
}

// RequestStatus is the lifecycle state of an added-vehicle request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusActive    RequestStatus = "ACTIVE"
	StatusCompleted RequestStatus = "COMPLETED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []RequestStatus{StatusPending, StatusActive, StatusCompleted, StatusCancelled}

// IsValid checks if the RequestStatus is a valid enum value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

// IsOpen reports whether the status counts toward the one-open-request-per-purpose rule.
func (s RequestStatus) IsOpen() bool {
	return s == StatusPending || s == StatusActive
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo checks if a status transition is valid.
// Valid transitions:
// - PENDING -> ACTIVE, COMPLETED, CANCELLED
// - ACTIVE -> COMPLETED, CANCELLED
// - COMPLETED -> CANCELLED (soft delete keeps completion history)
// - CANCELLED -> (terminal)
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusActive || target == StatusCompleted || target == StatusCancelled
	case StatusActive:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCompleted:
		return target == StatusCancelled
	case StatusCancelled:
		return false
	}

	return false
}

// Priority is informational and does not affect the lifecycle.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// IsValid checks if the Priority is a valid enum value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

// Rank orders priorities from LOW (1) to URGENT (4).
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}

	return 0
}

// ContactMethod is the requester's preferred channel.
type ContactMethod string

const (
	ContactPhone    ContactMethod = "PHONE"
	ContactEmail    ContactMethod = "EMAIL"
	ContactSMS      ContactMethod = "SMS"
	ContactWhatsApp ContactMethod = "WHATSAPP"
)

// IsValid checks if the ContactMethod is a valid enum value.
func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactPhone, ContactEmail, ContactSMS, ContactWhatsApp:
		return true
	}

	return false
}

// SourceChannel records where a request was submitted from.
type SourceChannel string

const (
	SourceWeb        SourceChannel = "WEB"
	SourceMobile     SourceChannel = "MOBILE"
	SourceAPI        SourceChannel = "API"
	SourceAdminPanel SourceChannel = "ADMIN_PANEL"
)

// ParseSourceChannel maps a client-supplied channel name, defaulting to WEB.
func ParseSourceChannel(s string) SourceChannel {
	switch ch := SourceChannel(strings.ToUpper(strings.TrimSpace(s))); ch {
	case SourceWeb, SourceMobile, SourceAPI, SourceAdminPanel:
		return ch
	}

	return SourceWeb
}

// ServiceDetails describes the work being requested.
type ServiceDetails struct {
	ServiceType       string  `json:"serviceType,omitempty"`
	EstimatedCost     float64 `json:"estimatedCost"`
	EstimatedDuration string  `json:"estimatedDuration,omitempty"`
	IsUrgent          bool    `json:"isUrgent"`
}

// ContactInfo is how the requester wants to be reached.
type ContactInfo struct {
	Phone                  string        `json:"phone,omitempty"`
	Email                  string        `json:"email,omitempty"`
	PreferredContactMethod ContactMethod `json:"preferredContactMethod"`
}

// Location is where the work should happen.
type Location struct {
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
}

// RequestMetadata is write-once provenance kept for audit.
type RequestMetadata struct {
	Source    SourceChannel `json:"source"`
	IPAddress string        `json:"ipAddress,omitempty"`
	UserAgent string        `json:"userAgent,omitempty"`
	SessionID string        `json:"sessionId,omitempty"`
}

// Tracking holds the audit stamps of a request.
type Tracking struct {
	SubmittedAt time.Time  `json:"submittedAt"`
	LastUpdated time.Time  `json:"lastUpdated"`
	UpdatedBy   *uuid.UUID `json:"updatedBy,omitempty"`
	CompletedBy *uuid.UUID `json:"completedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// AddedVehicleRequest is one actor's intent to use a specific vehicle for a specific purpose.
type AddedVehicleRequest struct {
	ID             uuid.UUID       `json:"id"`
	VehicleID      uuid.UUID       `json:"vehicleId"`
	AddedBy        uuid.UUID       `json:"addedBy"`
	VehicleOwner   uuid.UUID       `json:"vehicleOwner"` // snapshot at creation
	OwnerNIC       string          `json:"ownerNIC"`     // snapshot at creation
	Purpose        Purpose         `json:"purpose"`
	Status         RequestStatus   `json:"status"`
	Priority       Priority        `json:"priority"`
	Notes          string          `json:"notes,omitempty"`
	ScheduledDate  *time.Time      `json:"scheduledDate,omitempty"`
	ServiceDetails ServiceDetails  `json:"serviceDetails"`
	ContactInfo    ContactInfo     `json:"contactInfo"`
	Location       Location        `json:"location"`
	Metadata       RequestMetadata `json:"metadata"`
	Tracking       Tracking        `json:"tracking"`
	IsActive       bool            `json:"isActive"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsOpen reports whether the request blocks another request for the same vehicle, actor and purpose.
func (r *AddedVehicleRequest) IsOpen() bool {
	return r.IsActive && r.Status.IsOpen()
}

// Clone returns a deep copy, so callers can mutate it without touching stored state.
func (r *AddedVehicleRequest) Clone() *AddedVehicleRequest {
	if r == nil {
		return nil
	}

	c := *r
	c.ScheduledDate = cloneTime(r.ScheduledDate)
	c.Tracking.UpdatedBy = cloneUUID(r.Tracking.UpdatedBy)
	c.Tracking.CompletedBy = cloneUUID(r.Tracking.CompletedBy)
	c.Tracking.CompletedAt = cloneTime(r.Tracking.CompletedAt)

	return &c
}

// AddedVehicleRecord is a request joined with the projections shown to callers.
type AddedVehicleRecord struct {
	*AddedVehicleRequest
	Vehicle     *VehicleSummary `json:"vehicle,omitempty"`
	AddedByUser *UserSummary    `json:"addedByUser,omitempty"`
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id

	return &v
}
