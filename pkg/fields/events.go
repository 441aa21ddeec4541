package fields

// Event is a discrete user action addressed to one field.
type Event interface {
	Target() Path
}

// Change replaces the value of a scalar field with a document value.
type Change struct {
	Path  Path
	Value any
}

// Target implements Event.
func (e Change) Target() Path { return e.Path }

// Input carries raw text typed into a scalar control. The field decodes it
// with its widget before committing.
type Input struct {
	Path Path
	Raw  string
}

// Target implements Event.
func (e Input) Target() Path { return e.Path }

// Add appends a default item to the array at Path.
type Add struct {
	Path Path
}

// Target implements Event.
func (e Add) Target() Path { return e.Path }

// Remove deletes the item at Index from the array at Path.
type Remove struct {
	Path  Path
	Index int
}

// Target implements Event.
func (e Remove) Target() Path { return e.Path }
