package memory

import (
	"sort"
)

// table keeps rows addressable by id while preserving insertion order.
type table[T any] struct {
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// put inserts a new row at the end or replaces an existing one in place.
func (t *table[T]) put(id string, row T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) some(match func(T) bool) bool {
	for _, id := range t.order {
		if match(t.rows[id]) {
			return true
		}
	}
	return false
}

func (t *table[T]) filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			out = append(out, row)
		}
	}
	return out
}

// linkSet is a many-to-many relation keyed by parent id. A pair exists at
// most once.
type linkSet map[string]map[string]struct{}

// children returns the sorted, non-nil child ids of parent.
func (l linkSet) children(parent string) []string {
	out := make([]string, 0, len(l[parent]))
	for child := range l[parent] {
		out = append(out, child)
	}
	sort.Strings(out)
	return out
}

func (l linkSet) set(parent string, children []string) {
	delete(l, parent)
	for _, child := range children {
		l.add(parent, child)
	}
}

func (l linkSet) add(parent, child string) bool {
	set, ok := l[parent]
	if !ok {
		set = make(map[string]struct{})
		l[parent] = set
	}
	if _, exists := set[child]; exists {
		return false
	}
	set[child] = struct{}{}
	return true
}

func (l linkSet) remove(parent, child string) bool {
	set, ok := l[parent]
	if !ok {
		return false
	}
	if _, exists := set[child]; !exists {
		return false
	}
	delete(set, child)
	if len(set) == 0 {
		delete(l, parent)
	}
	return true
}

func (l linkSet) has(parent, child string) bool {
	_, ok := l[parent][child]
	return ok
}

func (l linkSet) drop(parent string) {
	delete(l, parent)
}

func (l linkSet) dropChild(child string) {
	for parent := range l {
		l.remove(parent, child)
	}
}

func (l linkSet) hasChild(child string) bool {
	for _, set := range l {
		if _, ok := set[child]; ok {
			return true
		}
	}
	return false
}
