package config

// Task priority levels
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task status values
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Context entry types
const (
	ContextTypeWhatsApp = "whatsapp"
	ContextTypeEmail    = "email"
	ContextTypeNote     = "note"
	ContextTypeMeeting  = "meeting"
	ContextTypeCall     = "call"
	ContextTypeUnknown  = "unknown"
)

// ValidPriorities lists the accepted task priorities.
var ValidPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ValidStatuses lists the accepted task statuses.
var ValidStatuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ValidContextTypes lists the accepted context entry types.
var ValidContextTypes = []string{
	ContextTypeWhatsApp, ContextTypeEmail, ContextTypeNote,
	ContextTypeMeeting, ContextTypeCall, ContextTypeUnknown,
}

// IsValid reports whether value is one of the allowed values.
func IsValid(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
