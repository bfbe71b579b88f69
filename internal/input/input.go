// Package input translates raw terminal bytes into a debounced logical
// control state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as "held" after its last
// press. Terminal input has no key-up events, so holds are inferred from
// the auto-repeat stream.
const keyHoldDuration = 40 * time.Millisecond

// Controls is the logical control state for one frame. Movement and Fire
// report held state; Pause and Confirm report a rising edge only, so
// key-repeat never re-triggers discrete actions.
type Controls struct {
	Up, Down    bool
	Left, Right bool
	Fire        bool
	Pause       bool
	Confirm     bool
	Quit        bool
}

// keyState tracks the last time each logical key was seen.
type keyState struct {
	up      time.Time
	down    time.Time
	left    time.Time
	right   time.Time
	fire    time.Time
	pause   time.Time
	confirm time.Time
	quit    time.Time
}

// Mapper reads raw bytes from a terminal stream and derives Controls.
// A reader goroutine feeds a channel; Poll drains it without blocking,
// so the frame loop never waits on input.
type Mapper struct {
	ch    chan byte
	state keyState

	prevPause   bool
	prevConfirm bool

	malformed uint64

	now func() time.Time
}

// NewMapper starts a reader goroutine on r and returns the mapper.
func NewMapper(r *bufio.Reader) *Mapper {
	m := newMapper()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(m.ch)
				return
			}
			m.ch <- b
		}
	}()
	return m
}

func newMapper() *Mapper {
	return &Mapper{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// Poll drains buffered bytes and returns the current control state.
// Non-blocking; called once per frame.
func (m *Mapper) Poll() Controls {
	now := m.now()

	var buf []byte
drain:
	for {
		select {
		case b, ok := <-m.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	m.apply(buf, now)
	return m.controls(now)
}

// apply parses collected bytes into key timestamps. Unknown bytes are
// counted and ignored; a malformed sequence never affects other controls.
func (m *Mapper) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> (arrow keys).
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				m.state.up = now
			case 'B':
				m.state.down = now
			case 'C':
				m.state.right = now
			case 'D':
				m.state.left = now
			default:
				m.malformed++
			}
			i += 2
			continue
		}

		switch b {
		case 'w', 'W', 'k', 'K':
			m.state.up = now
		case 's', 'S', 'j', 'J':
			m.state.down = now
		case 'a', 'A', 'h', 'H':
			m.state.left = now
		case 'd', 'D', 'l', 'L':
			m.state.right = now
		case ' ':
			m.state.fire = now
		case 'p', 'P', '\x1b':
			m.state.pause = now
		case '\n', '\r':
			m.state.confirm = now
		case 'q', 'Q':
			m.state.quit = now
		default:
			m.malformed++
		}
	}
}

// controls builds the frame's control state from key timestamps, with
// edge detection for the discrete actions.
func (m *Mapper) controls(now time.Time) Controls {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}

	pauseHeld := held(m.state.pause)
	confirmHeld := held(m.state.confirm)

	c := Controls{
		Up:      held(m.state.up),
		Down:    held(m.state.down),
		Left:    held(m.state.left),
		Right:   held(m.state.right),
		Fire:    held(m.state.fire),
		Pause:   pauseHeld && !m.prevPause,
		Confirm: confirmHeld && !m.prevConfirm,
		Quit:    held(m.state.quit),
	}

	m.prevPause = pauseHeld
	m.prevConfirm = confirmHeld
	return c
}

// Malformed returns how many unrecognized input bytes were ignored.
func (m *Mapper) Malformed() uint64 {
	return m.malformed
}
