package session

import "errors"

var (
	// ErrSessionNotFound сессия отсутствует или истекла
	ErrSessionNotFound = errors.New("session: not found")
	ErrStore           = errors.New("session: store error")
)
