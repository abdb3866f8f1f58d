package models

// Level of a notification.
type Level string

// Notification levels
const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notification is the wire format used by the Kafka and Redis sinks.
type Notification struct {
	ID        string `json:"id"`        // Unique notification identifier
	Level     Level  `json:"level"`     // success, info or error
	Message   string `json:"message"`   // Human readable outcome
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds)
}
