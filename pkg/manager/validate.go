package manager

import "regexp"

// Arch package names start with an alphanumeric and may contain
// alphanumerics plus @ . _ + - after that.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9@._+-]*$`)

// MaxNameLength is the maximum accepted package name length.
const MaxNameLength = 255

// ValidName reports whether the given package name is well-formed. The check
// runs before any command is issued; argument-vector execution makes it
// defense in depth rather than the sole safeguard.
func ValidName(name string) bool {
	return len(name) <= MaxNameLength && namePattern.MatchString(name)
}
