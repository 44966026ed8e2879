package session

import "github.com/octabyte/smartsaas-go/utils/logger"

// Notifier surfaces session events to the user. This is the seam a UI
// binds its toast layer to.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log. It is the
// default for headless consumers.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) {
	logger.LogInfo(msg)
}

func (LogNotifier) Error(msg string) {
	logger.LogError(msg)
}
