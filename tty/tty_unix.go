//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tty

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// attrs is a termios snapshot.
type attrs struct {
	unix.Termios
}

func (a *attrs) echo() bool {
	return a.Lflag&unix.ECHO != 0
}

func (a *attrs) canonical() bool {
	return a.Lflag&unix.ICANON != 0
}

func (a *attrs) setEcho(on bool) {
	if on {
		a.Lflag |= unix.ECHO
	} else {
		a.Lflag &^= unix.ECHO
	}
}

func (a *attrs) setCanonical(on bool) {
	if on {
		a.Lflag |= unix.ICANON
	} else {
		a.Lflag &^= unix.ICANON
	}
}

type unixTerminal struct {
	fd int
}

func newPlatform(f *os.File) platform {
	return &unixTerminal{fd: int(f.Fd())}
}

func (t *unixTerminal) getattr() (attrs, error) {
	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return attrs{}, err
	}
	return attrs{Termios: *termios}, nil
}

func (t *unixTerminal) setattr(a attrs) error {
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, &a.Termios)
}

func (t *unixTerminal) poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(t.fd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, pollTimeout(timeout))
	if err == unix.EINTR {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
}

func (t *unixTerminal) readByte() (byte, error) {
	var b [1]byte
	n, err := unix.Read(t.fd, b[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, io.ErrUnexpectedEOF
	}
	return b[0], nil
}

// pollTimeout rounds d up to whole milliseconds.
func pollTimeout(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Millisecond - 1) / time.Millisecond)
}
