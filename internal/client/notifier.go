package client

// Notifier surfaces transient user-facing notifications. The console
// front-end prints them; tests install a recording double.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
