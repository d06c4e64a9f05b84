package component

// Tag is a free-form label for looking entities up by name.
type Tag struct {
	Name string
}
