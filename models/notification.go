package models

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is an event the core emits for the surrounding UI to render as a
// toast. No operation may assume rendering succeeded.
type Notice struct {
	ID      string      `json:"id"`
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
