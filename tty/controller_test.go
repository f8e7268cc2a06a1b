//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tty

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errFake = errors.New("fake failure")

// fakeTerminal is a platform whose calls can be made to fail.
type fakeTerminal struct {
	attrs attrs

	getFails bool
	// setFailsAt fails the n-th call to setattr, counting from one.
	setFailsAt int
	sets       int

	ready   bool
	pollErr error
	input   []byte
	readErr error
}

func newFakeTerminal() *fakeTerminal {
	f := new(fakeTerminal)
	f.attrs.setEcho(true)
	f.attrs.setCanonical(true)
	return f
}

func (f *fakeTerminal) getattr() (attrs, error) {
	if f.getFails {
		return attrs{}, errFake
	}
	return f.attrs, nil
}

func (f *fakeTerminal) setattr(a attrs) error {
	f.sets++
	if f.sets == f.setFailsAt {
		return errFake
	}
	f.attrs = a
	return nil
}

func (f *fakeTerminal) poll(time.Duration) (bool, error) {
	return f.ready || len(f.input) > 0, f.pollErr
}

func (f *fakeTerminal) readByte() (byte, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.input) == 0 {
		return 0, errFake
	}
	b := f.input[0]
	f.input = f.input[1:]
	return b, nil
}

func TestControllerInitError(t *testing.T) {
	f := newFakeTerminal()
	f.getFails = true
	_, err := newController(f)
	require.ErrorIs(t, err, ErrInit)
	require.ErrorIs(t, err, errFake)
}

func TestEnableRawInputIsNotAtomic(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)

	f.setFailsAt = 2
	err = c.EnableRawInput()
	require.ErrorIs(t, err, ErrSetAttr)

	// Echo was switched off before line buffering failed, and is not rolled back.
	require.False(t, c.Echo())
	require.True(t, c.Canonical())
	require.False(t, f.attrs.echo())
	require.True(t, f.attrs.canonical())
}

func TestDisableRawInputGetAttrError(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)
	require.NoError(t, c.EnableRawInput())

	f.getFails = true
	require.ErrorIs(t, c.DisableRawInput(), ErrGetAttr)
	require.False(t, c.Echo())
	require.False(t, c.Canonical())
}

func TestRestoreStateRederivesFlags(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)

	require.NoError(t, c.EnableRawInput())
	require.NoError(t, c.SaveState())
	require.NoError(t, c.DisableRawInput())
	require.True(t, c.Echo())

	require.NoError(t, c.RestoreState())
	require.False(t, c.Echo())
	require.False(t, c.Canonical())
	require.False(t, f.attrs.echo())

	f.setFailsAt = f.sets + 1
	require.ErrorIs(t, c.RestoreState(), ErrSetAttr)
}

func TestGetchFake(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)

	f.input = []byte{'a'}
	ch, ok, err := c.Getch(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte('a'), ch)
	require.True(t, f.attrs.echo())
	require.True(t, f.attrs.canonical())

	_, ok, err = c.Getch(0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetchReadError(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)

	f.ready = true
	f.readErr = errFake
	_, ok, err := c.Getch(time.Millisecond)
	require.ErrorIs(t, err, ErrRead)
	require.False(t, ok)

	// The mode is restored even though the read failed.
	require.True(t, c.Echo())
	require.True(t, c.Canonical())
	require.True(t, f.attrs.echo())
	require.True(t, f.attrs.canonical())
}

func TestGetchPollError(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)

	f.pollErr = errFake
	_, _, err = c.Getch(0)
	require.ErrorIs(t, err, ErrPoll)
	require.True(t, f.attrs.echo())
}

func TestGetchRestoreError(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)

	// Calls 1 and 2 enter raw mode, call 3 restores line buffering.
	f.setFailsAt = 3
	f.input = []byte{'z'}
	ch, ok, err := c.Getch(0)
	require.ErrorIs(t, err, ErrSetAttr)
	require.True(t, ok)
	require.Equal(t, byte('z'), ch)
	require.False(t, c.Canonical())
	require.True(t, c.Echo())
}

func TestGetchInRawMode(t *testing.T) {
	f := newFakeTerminal()
	c, err := newController(f)
	require.NoError(t, err)
	require.NoError(t, c.EnableRawInput())

	sets := f.sets
	_, _, err = c.Getch(0)
	require.NoError(t, err)
	require.Equal(t, sets, f.sets, "raw mode needs no attribute changes")
}
