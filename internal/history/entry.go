// Package history records package-operation outcomes in a BoltDB store.
package history

import "time"

// Operation is the kind of package operation recorded.
type Operation string

const (
	OpInstall Operation = "install"
	OpRemove  Operation = "remove"
	OpUpdate  Operation = "update"
	OpOrphans Operation = "orphans"
)

// Entry is one recorded operation.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Manager   string    `json:"manager"` // pacman, yay, paru
	Packages  []string  `json:"packages"`
	Mode      string    `json:"mode,omitempty"` // remove/update mode, if any
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry creates an entry for an operation about to run.
func NewEntry(op Operation, mgr string, packages []string) *Entry {
	return &Entry{
		ID:        time.Now().Format("20060102150405.000000"),
		Timestamp: time.Now(),
		Operation: op,
		Manager:   mgr,
		Packages:  packages,
	}
}

// MarkSuccess marks the entry as successful.
func (e *Entry) MarkSuccess() {
	e.Success = true
}

// MarkFailed marks the entry as failed with an error message.
func (e *Entry) MarkFailed(err error) {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
}

// Summary returns a one-line description for listings.
func (e *Entry) Summary() string {
	status := "success"
	if !e.Success {
		status = "failed"
	}

	s := e.Timestamp.Format("2006-01-02 15:04:05") + " " + string(e.Operation)
	if e.Mode != "" {
		s += "/" + e.Mode
	}
	if len(e.Packages) > 0 {
		s += " " + e.Packages[0]
		if len(e.Packages) > 1 {
			s += " ..."
		}
	}
	return s + " [" + e.Manager + "] (" + status + ")"
}
