package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list deals")
	ErrFailedToSave   = errors.New("failed to save deal")
	ErrFailedToDelete = errors.New("failed to delete deal")
	ErrNotFound       = errors.New("deal not found")
)
