package service

import "time"

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

// enum values for NoticeLevel
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient, non-fatal message for the user (rendered as a
// toast by the UI). Remote failures must always surface as a notice or an
// error response, never silently.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	At      time.Time   `json:"at"`
}
