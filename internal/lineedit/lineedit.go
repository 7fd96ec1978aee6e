// Package lineedit is a single-line, fixed-capacity text editor driven by
// discrete key events. It knows nothing about terminals: callers translate
// their key events into Event values and render Visible/Column.
package lineedit

// DefaultCapacity is the maximum number of bytes an entry may hold.
const DefaultCapacity = 256

const (
	MsgLimitExceeded  = "> Input limit exceeded."
	MsgInvalidInput   = "> Invalid input."
	MsgClipboardEmpty = "> Clipboard empty."
)

type Mode int

const (
	Insert Mode = iota
	Replace
)

func (m Mode) String() string {
	if m == Replace {
		return "REPLACE"
	}
	return "INSERT"
}

type Key int

const (
	KeyRune Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyCutToEnd
	KeyCutToStart
	KeyCutWordBackward
	KeyCutWordForward
	KeyPaste
	KeyCancel
	KeyAccept
	KeyToggleMode
	KeyToggleHelp
	KeyIgnore  // consumed silently (tab)
	KeyInvalid // bound to nothing; reported as invalid input
)

// Event is one input event. Rune is only read for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Result tells the caller what the event did to the session.
type Result int

const (
	Continue Result = iota
	Accept
	Cancel
	ToggleHelp
)

// Editor holds the state of one line being edited.
//
// Invariants: 0 <= cursor <= len(buf) <= capacity, scroll <= cursor,
// len(clip) <= capacity.
type Editor struct {
	buf      []byte
	capacity int
	cursor   int
	scroll   int
	width    int
	mode     Mode
	clip     []byte
	msg      string
}

// New returns an empty editor. Capacity <= 0 means DefaultCapacity; width is
// the number of visible columns.
func New(capacity, width int) *Editor {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if width < 1 {
		width = 1
	}
	return &Editor{
		buf:      make([]byte, 0, capacity),
		capacity: capacity,
		width:    width,
	}
}

// Set replaces the contents (truncated to capacity) and homes the cursor.
// The cut buffer and mode carry over, so one editor can serve every prompt.
func (e *Editor) Set(s string) {
	if len(s) > e.capacity {
		s = s[:e.capacity]
	}
	e.buf = append(e.buf[:0], s...)
	e.cursor = 0
	e.scroll = 0
	e.msg = ""
}

// SetWidth changes the visible width and re-clamps the scroll offset.
func (e *Editor) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	e.width = w
	if e.cursor-e.scroll >= e.width-1 {
		e.scroll = max(0, e.cursor-(e.width-1))
	}
	if e.scroll > e.cursor {
		e.scroll = e.cursor
	}
}

func (e *Editor) String() string { return string(e.buf) }
func (e *Editor) Len() int { return len(e.buf) }
func (e *Editor) Capacity() int { return e.capacity }
func (e *Editor) Cursor() int { return e.cursor }
func (e *Editor) Scroll() int { return e.scroll }
func (e *Editor) Mode() Mode { return e.mode }
func (e *Editor) Message() string { return e.msg }
func (e *Editor) Clipboard() string {
	return string(e.clip)
}

// Visible is the slice of the buffer inside the window.
func (e *Editor) Visible() string {
	end := min(len(e.buf), e.scroll+e.width)
	return string(e.buf[e.scroll:end])
}

// Column is the cursor position relative to the window.
func (e *Editor) Column() int { return e.cursor - e.scroll }

// Finish returns the final contents.
func (e *Editor) Finish() string { return string(e.buf) }

// Handle processes one event to completion.
//
// While a message is showing, the event only dismisses it.
func (e *Editor) Handle(ev Event) Result {
	if e.msg != "" {
		e.msg = ""
		return Continue
	}

	switch ev.Key {
	case KeyAccept:
		return Accept
	case KeyCancel:
		e.clear()
		return Cancel
	case KeyToggleHelp:
		return ToggleHelp
	case KeyIgnore:
	case KeyInvalid:
		e.invalid()
	case KeyLeft:
		e.left()
	case KeyRight:
		e.right()
	case KeyHome:
		e.home()
	case KeyEnd:
		e.end()
	case KeyBackspace:
		e.backspace()
	case KeyDelete:
		e.del()
	case KeyCutToEnd:
		e.cutToEnd()
	case KeyCutToStart:
		e.cutToStart()
	case KeyCutWordBackward:
		e.cutWordBackward()
	case KeyCutWordForward:
		e.cutWordForward()
	case KeyPaste:
		e.paste()
	case KeyToggleMode:
		if e.mode == Insert {
			e.mode = Replace
		} else {
			e.mode = Insert
		}
	case KeyRune:
		e.typeRune(ev.Rune)
	default:
		e.invalid()
	}
	return Continue
}

func (e *Editor) invalid() { e.msg = MsgInvalidInput }

func (e *Editor) left() {
	e.cursor--
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.cursor < e.scroll {
		e.scroll = e.cursor
	}
}

func (e *Editor) right() {
	e.cursor++
	if e.cursor > len(e.buf) {
		e.cursor = len(e.buf)
	}
	if e.cursor-e.scroll >= e.width-1 {
		e.scroll = max(0, e.cursor-(e.width-1))
	}
}

func (e *Editor) home() {
	e.cursor = 0
	e.left()
}

func (e *Editor) end() {
	e.cursor = len(e.buf)
	e.right()
}

// del removes the byte under the cursor.
func (e *Editor) del() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
}

func (e *Editor) backspace() {
	if e.cursor <= 0 {
		return
	}
	e.left()
	e.del()
}

// insert places c at the cursor without moving it. The caller checks capacity.
func (e *Editor) insert(c byte) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = c
}

func (e *Editor) typeRune(r rune) {
	if r < ' ' || r > '~' {
		e.invalid()
		return
	}
	c := byte(r)
	if e.mode == Replace && e.cursor < len(e.buf) {
		e.del()
		e.insert(c)
		e.right()
		return
	}
	if len(e.buf) >= e.capacity {
		e.msg = MsgLimitExceeded
		return
	}
	e.insert(c)
	e.right()
}

func (e *Editor) setClip(b []byte) {
	e.clip = append(e.clip[:0], b...)
}

func (e *Editor) cutToEnd() {
	if e.cursor < len(e.buf) {
		e.setClip(e.buf[e.cursor:])
	}
	e.buf = e.buf[:e.cursor]
	e.right()
}

func (e *Editor) cutToStart() {
	if e.cursor > 0 {
		e.setClip(e.buf[:e.cursor])
	}
	e.buf = append(e.buf[:0], e.buf[e.cursor:]...)
	e.cursor = 0
	e.left()
}

// cutWordBackward skips spaces left of the cursor, then the word before
// them, and cuts everything from there to the cursor. Every cut replaces
// the clipboard.
func (e *Editor) cutWordBackward() {
	dst := e.cursor
	for dst > 0 && e.buf[dst-1] == ' ' {
		dst--
	}
	for dst > 0 && e.buf[dst-1] != ' ' {
		dst--
	}
	if dst == e.cursor {
		return
	}
	// Deleted right to left; the clipboard keeps text order.
	e.setClip(e.buf[dst:e.cursor])
	for e.cursor > dst {
		e.backspace()
	}
}

// cutWordForward mirrors cutWordBackward to the right of the cursor.
func (e *Editor) cutWordForward() {
	dst := e.cursor
	for dst < len(e.buf) && e.buf[dst] == ' ' {
		dst++
	}
	for dst < len(e.buf) && e.buf[dst] != ' ' {
		dst++
	}
	if dst == e.cursor {
		return
	}
	e.setClip(e.buf[e.cursor:dst])
	for n := dst - e.cursor; n > 0; n-- {
		e.del()
	}
}

// paste inserts the clipboard at the cursor. The cursor stays where it was,
// in front of the pasted text.
func (e *Editor) paste() {
	if len(e.clip) == 0 {
		e.msg = MsgClipboardEmpty
		return
	}
	room := e.capacity - len(e.buf)
	n := len(e.clip)
	if n > room {
		n = room
		e.msg = MsgLimitExceeded
	}
	for i := n - 1; i >= 0; i-- {
		e.insert(e.clip[i])
	}
}

func (e *Editor) clear() {
	e.buf = e.buf[:0]
	e.cursor = 0
	e.scroll = 0
}
