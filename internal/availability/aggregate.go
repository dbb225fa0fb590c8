package availability

// DomainAvailability is one row of a Snapshot.
type DomainAvailability struct {
	Domain  string  `json:"domain"`
	Percent float64 `json:"percent"`
	Up      int     `json:"up"`
	Total   int     `json:"total"`
}

// Snapshot is the availability of every tracked domain at one moment, in
// first-seen domain order. It is derived, never stored.
type Snapshot []DomainAvailability

// Map indexes the snapshot by domain.
func (s Snapshot) Map() map[string]float64 {
	m := make(map[string]float64, len(s))
	for _, d := range s {
		m[d.Domain] = d.Percent
	}
	return m
}

// Record appends up to the domain's history, creating it on first use.
func Record(h *History, domain string, up bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.byDom[domain]
	if s == nil {
		s = &series{cap: h.window}
		h.byDom[domain] = s
		h.order = append(h.order, domain)
	}
	s.add(up)
}

// Compute returns round(100*up/total, 1) for every domain in h.
// A domain only exists once a verdict was recorded for it, so total > 0.
func Compute(h *History) Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(Snapshot, 0, len(h.order))
	for _, d := range h.order {
		s := h.byDom[d]
		out = append(out, DomainAvailability{
			Domain:  d,
			Percent: Percent(s.up, s.total()),
			Up:      s.up,
			Total:   s.total(),
		})
	}
	return out
}

// Percent returns 100*up/total rounded to one decimal place. Ties round half
// to even on the exact value: 6.25 -> 6.2, 18.75 -> 18.8, 33.35 -> 33.4.
func Percent(up, total int) float64 {
	num := int64(up) * 1000 // tenths of a percent
	den := int64(total)
	q, r := num/den, num%den
	switch {
	case 2*r > den:
		q++
	case 2*r == den && q%2 == 1:
		q++
	}
	return float64(q) / 10
}
