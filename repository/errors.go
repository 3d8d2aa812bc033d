package repository

import "errors"

var (
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSettingNotFound  = errors.New("setting not found")
)
