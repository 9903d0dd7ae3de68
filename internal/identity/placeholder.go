package identity

// Placeholders stamped into the project when the real value is unknown.
const (
	PlaceholderName     = "YOUR_NAME"
	PlaceholderEmail    = "YOUR_EMAIL"
	PlaceholderUsername = "YOUR_GITHUB_USER_NAME"
)

// Lookup is the outcome of an identity lookup: either a found value or the
// placeholder marker. The zero Lookup is a placeholder.
type Lookup struct {
	value string
	found bool
}

// Found wraps a discovered value. Empty values count as not found.
func Found(value string) Lookup {
	if value == "" {
		return Lookup{}
	}
	return Lookup{value: value, found: true}
}

// Placeholder marks a value that could not be discovered.
func Placeholder() Lookup { return Lookup{} }

// IsFound reports whether a real value was discovered.
func (l Lookup) IsFound() bool { return l.found }

// Or collapses the lookup to a string, using placeholder when nothing was found.
func (l Lookup) Or(placeholder string) string {
	if l.found {
		return l.value
	}
	return placeholder
}
