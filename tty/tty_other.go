//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package tty

import (
	"os"
	"time"
)

type attrs struct{}

func (*attrs) echo() bool        { return false }
func (*attrs) canonical() bool   { return false }
func (*attrs) setEcho(bool)      {}
func (*attrs) setCanonical(bool) {}

type unsupported struct{}

func newPlatform(_ *os.File) platform {
	return unsupported{}
}

func (unsupported) getattr() (attrs, error) {
	return attrs{}, ErrNotSupported
}

func (unsupported) setattr(attrs) error {
	return ErrNotSupported
}

func (unsupported) poll(time.Duration) (bool, error) {
	return false, ErrNotSupported
}

func (unsupported) readByte() (byte, error) {
	return 0, ErrNotSupported
}
