package pubsub

import "autoconnect/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.RequestEvent) map[string]string {
	attributes := map[string]string{
		"event_type":       event.Type,
		"added_vehicle_id": event.EntityID,
		"vehicle_id":       event.VehicleID,
		"to_status":        event.ToStatus,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
