package style

// Style hook names shared between the UI and the style sheet
const (
	ClassSuggestedAction   = "suggested-action"
	ClassDestructiveAction = "destructive-action"
	ClassProgressButton    = "progress-button"
	ClassCompleteButton    = "complete-button"
	ClassNormalButton      = "normal-button"
	ClassHurrahAnimation   = "hurrah-animation"
)

// RequiredClasses lists the hooks every style sheet must define
var RequiredClasses = []string{
	ClassSuggestedAction,
	ClassDestructiveAction,
	ClassProgressButton,
	ClassCompleteButton,
	ClassNormalButton,
	ClassHurrahAnimation,
}

// Classes is an ordered set of style class names attached to a widget.
// Later classes take precedence when resolved against a Sheet.
type Classes struct {
	names []string
}

// NewClasses creates a class set with the given names
func NewClasses(names ...string) *Classes {
	c := &Classes{}
	for _, name := range names {
		c.Add(name)
	}
	return c
}

// Add appends a class if it is not already present
func (c *Classes) Add(name string) {
	if c.Has(name) {
		return
	}
	c.names = append(c.names, name)
}

// Remove drops a class if present
func (c *Classes) Remove(name string) {
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			return
		}
	}
}

// Has reports whether the class is present
func (c *Classes) Has(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Swap removes one class and adds another
func (c *Classes) Swap(remove, add string) {
	c.Remove(remove)
	c.Add(add)
}

// Names returns a copy of the class names in order
func (c *Classes) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}
