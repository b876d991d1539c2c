package recording

// Log is the ordered list of elements of one drawing.
//
// Elements are only ever appended, except that Undo removes the most recent
// one and Reset removes all of them. Log is not safe for concurrent use.
type Log struct {
	elements  []Element
	lastGroup GroupID
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds e to the end of the log. Nil elements are ignored.
func (l *Log) Append(e Element) {
	if e == nil {
		return
	}
	l.elements = append(l.elements, e)
}

// Undo removes and returns the most recent element.
func (l *Log) Undo() (Element, bool) {
	if len(l.elements) == 0 {
		return nil, false
	}
	e := l.elements[len(l.elements)-1]
	l.elements[len(l.elements)-1] = nil
	l.elements = l.elements[:len(l.elements)-1]
	return e, true
}

// Reset removes every element. Group identifiers keep increasing.
func (l *Log) Reset() {
	clear(l.elements)
	l.elements = l.elements[:0]
}

// Len returns the number of elements.
func (l *Log) Len() int {
	return len(l.elements)
}

// At returns the i-th element.
func (l *Log) At(i int) Element {
	return l.elements[i]
}

// Last returns the most recent element.
func (l *Log) Last() (Element, bool) {
	if len(l.elements) == 0 {
		return nil, false
	}
	return l.elements[len(l.elements)-1], true
}

// Elements returns a copy of the element list, oldest first.
func (l *Log) Elements() []Element {
	out := make([]Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// NewGroup returns a curve group identifier not used before in this log.
func (l *Log) NewGroup() GroupID {
	l.lastGroup++
	return l.lastGroup
}
