package ports

// Workspace locates the simulator device directory
type Workspace interface {
	// Enter resolves the device directory, makes it the working directory
	// and returns its path
	Enter() (string, error)
}
