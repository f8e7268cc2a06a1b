package tty

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

var debug bool

func init() {
	debug = os.Getenv("TERMGRID_DEBUG") != ""
}

// Errors
var (
	ErrInit         = errors.New("tty: failed to initialize terminal attributes")
	ErrGetAttr      = errors.New("tty: failed to get terminal attributes")
	ErrSetAttr      = errors.New("tty: failed to set terminal attributes")
	ErrPoll         = errors.New("tty: failed to poll input")
	ErrRead         = errors.New("tty: failed to read byte from input")
	ErrNotSupported = errors.New("tty: raw input not supported on this platform")
)

// platform is the operating system terminal interface.
type platform interface {
	getattr() (attrs, error)
	setattr(attrs) error

	// poll waits up to timeout for input, a zero timeout returns immediately.
	poll(timeout time.Duration) (bool, error)

	readByte() (byte, error)
}

// Controller toggles echo and canonical (line buffered) input on a terminal.
//
// The echo and canonical flags mirror the last attributes the controller read or applied.
type Controller struct {
	p     platform
	saved attrs
	echo  bool
	canon bool
}

// New returns a controller for standard input.
func New() (*Controller, error) {
	return Open(os.Stdin)
}

// Open returns a controller for the terminal f.
func Open(f *os.File) (*Controller, error) {
	return newController(newPlatform(f))
}

func newController(p platform) (*Controller, error) {
	a, err := p.getattr()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return &Controller{
		p:     p,
		saved: a,
		echo:  a.echo(),
		canon: a.canonical(),
	}, nil
}

// Echo reports whether typed characters are echoed.
func (c *Controller) Echo() bool {
	return c.echo
}

// Canonical reports whether input is line buffered.
func (c *Controller) Canonical() bool {
	return c.canon
}

// SaveState takes a snapshot of the current terminal attributes.
func (c *Controller) SaveState() error {
	a, err := c.p.getattr()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetAttr, err)
	}
	c.saved = a
	c.echo, c.canon = a.echo(), a.canonical()
	return nil
}

// RestoreState reapplies the attributes from the last snapshot. The snapshot taken when the
// controller was created is used if SaveState was never called.
func (c *Controller) RestoreState() error {
	if err := c.p.setattr(c.saved); err != nil {
		return fmt.Errorf("%w: %w", ErrSetAttr, err)
	}
	c.echo, c.canon = c.saved.echo(), c.saved.canonical()
	if debug {
		log.Printf("tty: restored state, echo=%t canonical=%t", c.echo, c.canon)
	}
	return nil
}

// EnableRawInput disables echo, then line buffering.
//
// The two steps are applied separately: if the second one fails, echo stays disabled.
func (c *Controller) EnableRawInput() error {
	if err := c.setEcho(false); err != nil {
		return err
	}
	return c.setCanonical(false)
}

// DisableRawInput enables echo, then line buffering.
//
// The two steps are applied separately: if the second one fails, echo stays enabled.
func (c *Controller) DisableRawInput() error {
	if err := c.setEcho(true); err != nil {
		return err
	}
	return c.setCanonical(true)
}

func (c *Controller) setEcho(on bool) error {
	if err := c.modify(func(a *attrs) { a.setEcho(on) }); err != nil {
		return err
	}
	c.echo = on
	if debug {
		log.Printf("tty: echo=%t", on)
	}
	return nil
}

func (c *Controller) setCanonical(on bool) error {
	if err := c.modify(func(a *attrs) { a.setCanonical(on) }); err != nil {
		return err
	}
	c.canon = on
	if debug {
		log.Printf("tty: canonical=%t", on)
	}
	return nil
}

// modify applies fn to the current terminal attributes.
func (c *Controller) modify(fn func(*attrs)) error {
	a, err := c.p.getattr()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetAttr, err)
	}
	fn(&a)
	if err = c.p.setattr(a); err != nil {
		return fmt.Errorf("%w: %w", ErrSetAttr, err)
	}
	return nil
}

// Getch waits up to timeout for a single byte of input, without echo or line buffering.
// A zero (or negative) timeout only checks for pending input.
//
// If no input arrives in time, ok is false and err is nil. The echo and canonical modes in
// effect before the call are restored before Getch returns; a failure to do so is reported
// in err, next to any byte that was read.
func (c *Controller) Getch(timeout time.Duration) (ch byte, ok bool, err error) {
	echo, canon := c.echo, c.canon

	defer func() {
		if canon && !c.canon {
			if rerr := c.setCanonical(true); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		if echo && !c.echo {
			if rerr := c.setEcho(true); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
	}()

	if canon {
		if err = c.setCanonical(false); err != nil {
			return
		}
	}
	if echo {
		if err = c.setEcho(false); err != nil {
			return
		}
	}

	ready, err := c.p.poll(max(timeout, 0))
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrPoll, err)
	}
	if !ready {
		return 0, false, nil
	}

	if ch, err = c.p.readByte(); err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return ch, true, nil
}
