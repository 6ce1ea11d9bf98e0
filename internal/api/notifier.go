package api

import "log"

// Notifier is the application-state capability the dispatcher reports to.
// Notify shows a user-facing error; RequestLogin opens the login prompt and
// must be idempotent.
type Notifier interface {
	Notify(message string)
	RequestLogin()
}

type NopNotifier struct{}

func (NopNotifier) Notify(string) {}
func (NopNotifier) RequestLogin() {}

// LogNotifier writes notifications to a logger, for terminal callers.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) logger() *log.Logger {
	if n.Logger == nil {
		return log.Default()
	}
	return n.Logger
}

func (n LogNotifier) Notify(message string) {
	n.logger().Printf("ERROR: %s", message)
}

func (n LogNotifier) RequestLogin() {
	n.logger().Println("WARN: session expired, please log in again")
}
