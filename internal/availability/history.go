package availability

import "sync"

// History holds the verdicts recorded per domain since the process started.
// It is owned by the sweeper; the status API only reads it through Compute.
type History struct {
	mu     sync.RWMutex
	window int
	order  []string // domains in first-seen order
	byDom  map[string]*series
}

// NewHistory returns an empty history. window <= 0 keeps every verdict;
// a positive window keeps only the most recent window verdicts per domain.
func NewHistory(window int) *History {
	if window < 0 {
		window = 0
	}
	return &History{
		window: window,
		byDom:  make(map[string]*series),
	}
}

// Window reports the per-domain cap, 0 when unbounded.
func (h *History) Window() int { return h.window }

// Verdicts returns a copy of the domain's verdicts, oldest first.
func (h *History) Verdicts(domain string) []bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s := h.byDom[domain]
	if s == nil {
		return nil
	}
	return s.values()
}

// Domains returns the tracked domains in first-seen order.
func (h *History) Domains() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.order...)
}

// series is an append-only verdict list, or a fixed-capacity ring when the
// history is windowed. up is kept in step with the stored verdicts.
type series struct {
	buf  []bool
	next int // ring write index, used only when capped
	cap  int
	up   int
}

func (s *series) add(v bool) {
	if s.cap == 0 || len(s.buf) < s.cap {
		s.buf = append(s.buf, v)
	} else {
		if s.buf[s.next] {
			s.up--
		}
		s.buf[s.next] = v
		s.next = (s.next + 1) % s.cap
	}
	if v {
		s.up++
	}
}

func (s *series) total() int { return len(s.buf) }

func (s *series) values() []bool {
	out := make([]bool, 0, len(s.buf))
	if s.cap == 0 || len(s.buf) < s.cap {
		return append(out, s.buf...)
	}
	out = append(out, s.buf[s.next:]...)
	return append(out, s.buf[:s.next]...)
}
