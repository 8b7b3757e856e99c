package entity

import "errors"

var (
	ErrAcquisition   = errors.New("dataset acquisition failed")
	ErrInvalidRoot   = errors.New("invalid dataset root")
	ErrDecode        = errors.New("image decode failed")
	ErrNormalization = errors.New("image normalization failed")
)
