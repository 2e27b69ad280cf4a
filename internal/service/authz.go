package service

import "github.com/origintrace/marketplace/internal/models"

// Authorization predicates. Each mutating operation evaluates one of
// these against freshly loaded records before touching the store.

// isSelf gates profile updates and deletion: a user may only act on
// their own record.
func isSelf(requesterID, targetID uint64) bool {
	return requesterID == targetID
}

// hasRole gates operations reserved for a single role.
func hasRole(u *models.User, role models.Role) bool {
	return u.Role == role
}

// ownsDevice gates operations reserved for the device's selling user.
func ownsDevice(d *models.Device, userID uint64) bool {
	return d.UserID == userID
}

// mayDeleteReport allows either a specialist or the owner of the
// reported device to remove a report.
func mayDeleteReport(u *models.User, device *models.Device) bool {
	return u.Role == models.RoleSpecialist || device.UserID == u.ID
}
