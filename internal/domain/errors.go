package domain

import "errors"

var (
	ErrIndexOutOfRange     = errors.New("device index out of range")
	ErrMalformedDeviceList = errors.New("malformed device list")
)
