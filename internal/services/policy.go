package services

import "github.com/uniwell/mindcare/internal/models"

// Action names a capability that is gated by role.
type Action string

const (
	ActionConfirmAppointment  Action = "confirm_appointment"
	ActionCompleteAppointment Action = "complete_appointment"
	ActionManageAvailability  Action = "manage_availability"
	ActionViewAnalytics       Action = "view_analytics"
	ActionExportReport        Action = "export_report"
)

var policy = map[Action][]models.Role{
	ActionConfirmAppointment:  {models.RoleCounselor},
	ActionCompleteAppointment: {models.RoleCounselor},
	ActionManageAvailability:  {models.RoleCounselor},
	ActionViewAnalytics:       {models.RoleAdmin},
	ActionExportReport:        {models.RoleAdmin},
}

// CanPerform reports whether the role is allowed the action. Unknown
// actions are denied for every role.
func CanPerform(role models.Role, action Action) bool {
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}
