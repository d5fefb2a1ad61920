// Package manager describes the supported Arch Linux package managers and
// parses their textual output into structured package records.
package manager

import "os/exec"

// Descriptor holds the static, build-time facts about one package manager.
type Descriptor struct {
	ID          string // binary name: "pacman", "yay", "paru"
	DisplayName string
	NeedsSudo   bool // true if mutating operations must run elevated
	SupportsAUR bool
}

// The three supported managers. AUR helpers run sudo internally, so they
// never need elevation from us.
var (
	Pacman = Descriptor{ID: "pacman", DisplayName: "Pacman", NeedsSudo: true, SupportsAUR: false}
	Yay    = Descriptor{ID: "yay", DisplayName: "Yay", NeedsSudo: false, SupportsAUR: true}
	Paru   = Descriptor{ID: "paru", DisplayName: "Paru", NeedsSudo: false, SupportsAUR: true}
)

// All returns the supported managers in menu order.
func All() []Descriptor {
	return []Descriptor{Pacman, Yay, Paru}
}

// Get returns the descriptor for the given manager ID.
func Get(id string) (Descriptor, bool) {
	for _, d := range All() {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Installed reports whether the manager binary is on PATH.
func (d Descriptor) Installed() bool {
	_, err := exec.LookPath(d.ID)
	return err == nil
}
