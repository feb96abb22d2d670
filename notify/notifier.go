package notify

import "go.uber.org/zap"

// Notifier receives a one line operational alert. Implementations must not
// report failure back to the caller.
type Notifier interface {
	Notify(message string)
}

// Func adapts a function to a Notifier
type Func func(message string)

// Notify calls f(message)
func (f Func) Notify(message string) {
	f(message)
}

// LogNotifier writes alerts to the zap logger
type LogNotifier struct{}

// Notify logs the alert
func (LogNotifier) Notify(message string) {
	zap.S().Warnw("operational alert", "message", message)
}

// Multi fans an alert out to every notifier in order
type Multi []Notifier

// Notify sends message to each notifier
func (m Multi) Notify(message string) {
	for _, n := range m {
		n.Notify(message)
	}
}

type asyncNotifier struct {
	next Notifier
}

// Async runs the wrapped notifier in its own goroutine so a slow or panicking
// delivery can never hold up the reply being written
func Async(n Notifier) Notifier {
	return asyncNotifier{next: n}
}

func (a asyncNotifier) Notify(message string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.S().Errorw("notifier panicked", "panic", r, "message", message)
			}
		}()
		a.next.Notify(message)
	}()
}
