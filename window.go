package lz4f

// window tracks the plaintext preceding the next linked block.
//
// The view either borrows caller memory (a destination or source buffer
// that is valid until the current call returns, or longer under the stable
// buffer options) or aliases own, the buffer owned by the session. When the
// view is owned, view and own are the same slice.
type window struct {
	view     []byte
	borrowed bool
	own      []byte
}

// bytes returns the dictionary for the next block: at most the last 64 KiB
// of the view.
func (w *window) bytes() []byte {
	if len(w.view) > winSize {
		return w.view[len(w.view)-winSize:]
	}
	return w.view
}

func (w *window) reset() {
	w.view = nil
	w.borrowed = false
	w.own = w.own[:0]
}

// update records that the last n bytes of region were just produced.
// region is everything written to the same buffer during the current call,
// in stream order.
func (w *window) update(region []byte, n int) {
	if n == 0 {
		return
	}
	span := region[len(region)-n:]

	switch {
	case len(w.view) == 0:
		w.view = span
		w.borrowed = true
	case w.borrowed && adjacent(w.view, span):
		w.view = w.view[:len(w.view)+n]
	case len(region) >= winSize:
		w.view = region
		w.borrowed = true
	default:
		w.push(span)
	}
}

// push appends span to the owned buffer, keeping at most the last 64 KiB
// of plaintext.
func (w *window) push(span []byte) {
	if cap(w.own) < 2*winSize {
		w.own = make([]byte, 0, 2*winSize)
	}
	if len(span) >= winSize {
		w.own = append(w.own[:0], span[len(span)-winSize:]...)
		w.view = w.own
		w.borrowed = false
		return
	}

	keep := winSize - len(span)
	if w.borrowed {
		old := w.view
		if len(old) > keep {
			old = old[len(old)-keep:]
		}
		w.own = append(w.own[:0], old...)
	} else if len(w.own)+len(span) > cap(w.own) {
		// Compact: carry forward only the tail that is still reachable.
		if len(w.own) > keep {
			n := copy(w.own, w.own[len(w.own)-keep:])
			w.own = w.own[:n]
		}
	}
	w.own = append(w.own, span...)
	w.view = w.own
	w.borrowed = false
}

// preserve copies a borrowed view into the owned buffer before the caller's
// memory goes away.
func (w *window) preserve() {
	if !w.borrowed {
		return
	}
	tail := w.bytes()
	if cap(w.own) < 2*winSize {
		w.own = make([]byte, 0, 2*winSize)
	}
	w.own = append(w.own[:0], tail...)
	w.view = w.own
	w.borrowed = false
}

// adjacent reports whether b starts right where a ends in memory.
func adjacent(a, b []byte) bool {
	if len(b) == 0 || cap(a)-len(a) < len(b) {
		return false
	}
	return &a[:len(a)+1][len(a)] == &b[0]
}
