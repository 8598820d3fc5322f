// Package permission decides whether an actor may perform an action on an
// added-vehicle request, a vehicle or an owner's request listing.
package permission

import (
	"strings"

	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
)

// Action is an operation subject to authorization.
type Action string

const (
	ActionCreate      Action = "CREATE"
	ActionView        Action = "VIEW"
	ActionViewByOwner Action = "VIEW_BY_OWNER"
	ActionUpdate      Action = "UPDATE"
	ActionDelete      Action = "DELETE"
	ActionComplete    Action = "COMPLETE"
)

// Target is what an action applies to. Only the field relevant to the action is read:
// Vehicle for CREATE, Request for VIEW/UPDATE/DELETE/COMPLETE, OwnerNIC for VIEW_BY_OWNER.
type Target struct {
	Vehicle  *entity.VehicleSummary
	Request  *entity.AddedVehicleRequest
	OwnerNIC string
}

// ForVehicle targets a vehicle.
func ForVehicle(v *entity.VehicleSummary) Target {
	return Target{Vehicle: v}
}

// ForRequest targets a single request.
func ForRequest(r *entity.AddedVehicleRequest) Target {
	return Target{Request: r}
}

// ForOwner targets every request of the owner identified by NIC.
func ForOwner(nic string) Target {
	return Target{OwnerNIC: nic}
}

// CanPerform reports whether actor may perform action on target. It has no side effects.
func CanPerform(actor *entity.Actor, action Action, target Target) bool {
	if actor == nil {
		return false
	}

	switch action {
	case ActionCreate:
		return ownsVehicle(actor, target.Vehicle)
	case ActionView, ActionComplete:
		// the vehicle owner confirms work is done, so COMPLETE follows VIEW
		return target.Request != nil && (actor.IsAdmin() || isCreator(actor, target.Request) || isOwner(actor, target.Request))
	case ActionUpdate, ActionDelete:
		// the owner may complete but not manage the record itself
		return target.Request != nil && (actor.IsAdmin() || isCreator(actor, target.Request))
	case ActionViewByOwner:
		return actor.IsAdmin() || nicMatches(actor.NIC, target.OwnerNIC)
	}

	return false
}

// Authorize is CanPerform returning ErrPermissionDenied on denial.
func Authorize(actor *entity.Actor, action Action, target Target) error {
	if !CanPerform(actor, action, target) {
		return domainerrors.ErrPermissionDenied.WithDetails("action " + string(action) + " is not allowed")
	}

	return nil
}

func ownsVehicle(actor *entity.Actor, v *entity.VehicleSummary) bool {
	if v == nil {
		return false
	}

	return v.OwnerID == actor.ID || nicMatches(actor.NIC, v.OwnerNIC)
}

func isCreator(actor *entity.Actor, r *entity.AddedVehicleRequest) bool {
	return r.AddedBy == actor.ID
}

// isOwner matches the owner account recorded on the request. The snapshotted NIC is
// only a listing key and grants nothing on a single request.
func isOwner(actor *entity.Actor, r *entity.AddedVehicleRequest) bool {
	return r.VehicleOwner == actor.ID
}

// nicMatches compares two NICs case-insensitively. Empty NICs never match.
func nicMatches(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}

	return strings.EqualFold(a, b)
}
