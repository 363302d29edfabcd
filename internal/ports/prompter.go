package ports

// DevicePrompter asks the user which devices to wipe and whether to recreate them
type DevicePrompter interface {
	// ConfirmRecreate returns true when the user wants the devices recreated
	ConfirmRecreate() (bool, error)

	// SelectDevices shows rows as a multi-select list and returns the chosen indices.
	// confirmed is false when the user quit without submitting.
	SelectDevices(rows []string) (selected []int, confirmed bool, err error)
}
