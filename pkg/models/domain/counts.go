package domain

// CountEntry is a single key of an OrderedCounts with its count
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts counts occurrences per key and iterates keys in the order they were
// first seen. The zero value is ready to use.
type OrderedCounts struct {
	keys   []string
	counts map[string]int
}

func NewOrderedCounts() *OrderedCounts {
	return &OrderedCounts{counts: map[string]int{}}
}

func (c *OrderedCounts) Inc(key string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *OrderedCounts) Get(key string) int {
	if c == nil {
		return 0
	}
	return c.counts[key]
}

func (c *OrderedCounts) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns a copy of the keys in first-occurrence order.
func (c *OrderedCounts) Keys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

func (c *OrderedCounts) Entries() []CountEntry {
	if c == nil {
		return nil
	}
	entries := make([]CountEntry, 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, CountEntry{Key: k, Count: c.counts[k]})
	}
	return entries
}

func (c *OrderedCounts) Total() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, v := range c.counts {
		total += v
	}
	return total
}
