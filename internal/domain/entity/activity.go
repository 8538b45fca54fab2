package entity

// MaxActivityDepth is the deepest level an activity may sit at, roots being level 1.
const MaxActivityDepth = 3

// Activity is a node of the activity classification tree.
type Activity struct {
	ID       int64  // Primary key.
	Name     string // Display name.
	ParentID *int64 // Parent activity; nil for roots.
}

// IsRoot reports whether the activity has no parent.
func (a *Activity) IsRoot() bool {
	return a.ParentID == nil
}
