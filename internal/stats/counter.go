package stats

// Entry is a value and how often it was seen.
type Entry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// None is reported for a most-common statistic over nothing.
var None = Entry{Value: "None", Count: 0}

// Counter counts values and remembers the order each was first seen in.
type Counter struct {
	order  []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Add(values ...string) {
	for _, v := range values {
		if _, ok := c.counts[v]; !ok {
			c.order = append(c.order, v)
		}
		c.counts[v]++
	}
}

func (c *Counter) Len() int { return len(c.order) }

func (c *Counter) Count(v string) int { return c.counts[v] }

// MostCommon returns the highest count. On a tie the value seen first wins.
func (c *Counter) MostCommon() Entry {
	best := None
	for _, v := range c.order {
		if n := c.counts[v]; n > best.Count {
			best = Entry{Value: v, Count: n}
		}
	}
	return best
}

// Entries returns every value with its count in first-seen order.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, Entry{Value: v, Count: c.counts[v]})
	}
	return out
}
