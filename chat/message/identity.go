package message

// Identifier is an interface that can uniquely identify itself.
type Identifier interface {
	// ID is a stable opaque handle for the connection, present from the
	// moment the connection opens.
	ID() string
	// Name is the claimed username, empty until login succeeds.
	Name() string
	SetName(string)
}

// SimpleID is a simple Identifier implementation used for testing.
type SimpleID struct {
	id   string
	name string
}

// NewSimpleID creates an Identifier with the given handle and no name.
func NewSimpleID(id string) *SimpleID {
	return &SimpleID{id: id}
}

// ID returns the handle as a string.
func (i *SimpleID) ID() string {
	return i.id
}

// Name returns the claimed name.
func (i *SimpleID) Name() string {
	return i.name
}

// SetName changes the claimed name.
func (i *SimpleID) SetName(name string) {
	i.name = name
}
