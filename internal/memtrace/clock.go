package memtrace

import "fmt"

// Clock tracks the last hardware clock seen so samples can be shown as
// deltas. The zero value starts from clock 0.
type Clock struct {
	last uint64
}

// Render formats the stamp as seconds with three decimals, followed by the
// clock delta in parentheses when the stamp carries a clock. Rendering a
// stamp with a clock advances the tracker.
func (c *Clock) Render(st Stamp) string {
	t := fmt.Sprintf("%07.3f", float64(st.Millis)/1000.0)
	if !st.HasClock {
		return t
	}
	delta := int64(st.Clock - c.last)
	c.last = st.Clock
	return fmt.Sprintf("%s(%07d)", t, delta)
}

// Reset returns the baseline to clock 0.
func (c *Clock) Reset() { c.last = 0 }

// Last returns the most recently seen clock value.
func (c *Clock) Last() uint64 { return c.last }
