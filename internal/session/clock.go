package session

import (
	"photobooth/internal/session/interfaces"
	"time"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) interfaces.Timer {
	return time.AfterFunc(d, fn)
}

func NewRealClock() interfaces.Clock {
	return realClock{}
}
