package treewrap

// ArrayCursor is a bidirectional positional cursor over an array
// view. Position 0 is the first element and Size() is the end
// position. Value produces a fresh handle each call, never a stable
// reference into the container.
type ArrayCursor struct {
	arr Array
	pos int
}

func NewArrayCursor(a Array) *ArrayCursor {
	return &ArrayCursor{arr: a}
}

func (c *ArrayCursor) Pos() int {
	return c.pos
}

func (c *ArrayCursor) AtEnd() bool {
	return c.pos >= c.arr.Size()
}

func (c *ArrayCursor) Value() Adapter {
	return c.arr.Elem(c.pos)
}

func (c *ArrayCursor) Next() {
	c.pos++
}

func (c *ArrayCursor) Prev() {
	c.pos--
}

// Advance steps |n| positions, forward for positive n and backward
// for negative n.
func (c *ArrayCursor) Advance(n int) {
	c.pos += n
}

// EqualPos reports positional identity with another cursor over the
// same container. Comparing cursors from different containers is
// unspecified.
func (c *ArrayCursor) EqualPos(o *ArrayCursor) bool {
	return c.pos == o.pos
}

// ObjectCursor is a bidirectional positional cursor over an object
// view's members.
type ObjectCursor struct {
	obj Object
	pos int
}

func NewObjectCursor(o Object) *ObjectCursor {
	return &ObjectCursor{obj: o}
}

func (c *ObjectCursor) Pos() int {
	return c.pos
}

func (c *ObjectCursor) AtEnd() bool {
	return c.pos >= c.obj.Size()
}

// Key returns an owned copy of the current member's name.
func (c *ObjectCursor) Key() string {
	k, _ := c.obj.Member(c.pos)
	return k
}

func (c *ObjectCursor) Value() Adapter {
	_, v := c.obj.Member(c.pos)
	return v
}

func (c *ObjectCursor) Next() {
	c.pos++
}

func (c *ObjectCursor) Prev() {
	c.pos--
}

func (c *ObjectCursor) Advance(n int) {
	c.pos += n
}

func (c *ObjectCursor) EqualPos(o *ObjectCursor) bool {
	return c.pos == o.pos
}

// Seek positions the cursor at the member named name via linear
// scan. When no such member exists the cursor lands at the end
// position and Seek reports false.
func (c *ObjectCursor) Seek(name string) bool {
	n := c.obj.Size()
	for i := 0; i < n; i++ {
		k, _ := c.obj.Member(i)
		if k == name {
			c.pos = i
			return true
		}
	}
	c.pos = n
	return false
}
