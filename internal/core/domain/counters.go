package domain

// Counters holds the process-wide category and product tallies. A single
// instance is created at startup and passed by reference into every Category;
// the values start at zero and only ever grow. The product tally counts
// successful adds cumulatively, not the number of live products.
type Counters struct {
	categories int64
	products   int64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) CategoryCount() int64 {
	return c.categories
}

func (c *Counters) ProductCount() int64 {
	return c.products
}

func (c *Counters) addCategory() {
	c.categories++
}

func (c *Counters) addProduct() {
	c.products++
}
