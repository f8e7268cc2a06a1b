// Package tty switches a terminal between cooked and raw input and reads single key presses.
//
// The [Controller] manipulates the operating system terminal attributes of one file, standard
// input by default. Terminal attributes are process wide state: only one controller should
// modify them during a session, and the original state should be restored on every exit path:
//
//	c, err := tty.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err = c.SaveState(); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.RestoreState()
//
//	if err = c.EnableRawInput(); err != nil {
//	    return err
//	}
//	for {
//	    ch, ok, err := c.Getch(10 * time.Millisecond)
//	    ...
//	}
//
// Raw input is implemented for Linux, macOS and the BSDs. On other platforms every call fails
// with [ErrNotSupported].
package tty
