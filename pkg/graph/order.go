package graph

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
)

// Order selects how a vertex collection is compared or arranged by
// [FirstVertex] and [OrderVertices]. The criteria form a closed set; any
// other value fails with ErrUnknownOrder.
type Order int

const (
	// OrderFIFO keeps the encounter order of the collection, which for
	// [Graph.Vertices] is insertion order. No comparison happens.
	OrderFIFO Order = iota
	// OrderID compares vertex identifiers, numerically when both sides
	// parse as integers and lexicographically otherwise.
	OrderID
	// OrderDegree compares the total degree. A self-loop counts twice.
	OrderDegree
	// OrderInDegree compares the indegree.
	OrderInDegree
	// OrderOutDegree compares the outdegree.
	OrderOutDegree
	// OrderRandom arranges uniformly at random. The descending flag has
	// no effect on it.
	OrderRandom
)

// orderNames maps each criterion to the name used in flags and logs.
var orderNames = map[Order]string{
	OrderFIFO:      "fifo",
	OrderID:        "id",
	OrderDegree:    "degree",
	OrderInDegree:  "indegree",
	OrderOutDegree: "outdegree",
	OrderRandom:    "random",
}

// String returns the lowercase criterion name, or "order(n)" for a value
// outside the defined constants.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// valid reports whether o is one of the defined criteria.
func (o Order) valid() bool {
	_, ok := orderNames[o]
	return ok
}

// ParseOrder maps a criterion name, as produced by [Order.String], back
// to its constant. Matching is case-insensitive. Returns ErrUnknownOrder
// for anything else.
func ParseOrder(s string) (Order, error) {
	want := strings.ToLower(s)
	for o, name := range orderNames {
		if name == want {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Orders returns all criteria in their declared sequence. The CLI uses
// this for flag help and the interactive explorer.
func Orders() []Order {
	return []Order{OrderFIFO, OrderID, OrderDegree, OrderInDegree, OrderOutDegree, OrderRandom}
}

// FirstVertex returns the extremal vertex of the collection under the
// given criterion: the minimum when ascending, the maximum when desc is
// set. The scan compares each candidate strictly against the running
// best, so the earliest encountered vertex wins exact ties. OrderFIFO
// short-circuits to the first element (or scans to the last when
// descending), and OrderRandom picks one element uniformly.
//
// Returns ErrUnknownOrder for a criterion outside the [Order] constants
// and ErrEmptySet for an empty collection, OrderRandom included.
func FirstVertex(vertices []*Vertex, by Order, desc bool) (*Vertex, error) {
	if !by.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, by)
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: first by %v", ErrEmptySet, by)
	}
	switch by {
	case OrderFIFO:
		if desc {
			return vertices[len(vertices)-1], nil
		}
		return vertices[0], nil
	case OrderRandom:
		return vertices[rand.Intn(len(vertices))], nil
	case OrderID:
		best := vertices[0]
		for _, v := range vertices[1:] {
			c := compareIDs(v.id, best.id)
			if (desc && c > 0) || (!desc && c < 0) {
				best = v
			}
		}
		return best, nil
	}
	key := degreeKey(by)
	best, bestKey := vertices[0], key(vertices[0])
	for _, v := range vertices[1:] {
		k := key(v)
		if (desc && k > bestKey) || (!desc && k < bestKey) {
			best, bestKey = v, k
		}
	}
	return best, nil
}

// OrderVertices returns a new slice with the vertices arranged by the
// given criterion. OrderFIFO copies the encounter order (reversed when
// descending), OrderRandom shuffles one uniform pass, and the comparing
// criteria materialize their keys and stable-sort, so vertices with
// equal keys keep their encounter order.
//
// Descending ID ordering keys on the negated numeric identifier and is
// therefore defined only when every ID parses as an integer; otherwise
// ErrNonNumericID is returned. Ascending ID ordering accepts any IDs.
// An unknown criterion fails with ErrUnknownOrder; an empty input yields
// an empty slice.
func OrderVertices(vertices []*Vertex, by Order, desc bool) ([]*Vertex, error) {
	if !by.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, by)
	}
	out := slices.Clone(vertices)
	switch by {
	case OrderFIFO:
		if desc {
			slices.Reverse(out)
		}
		return out, nil
	case OrderRandom:
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out, nil
	case OrderID:
		if !desc {
			slices.SortStableFunc(out, func(a, b *Vertex) int { return compareIDs(a.id, b.id) })
			return out, nil
		}
		keys := make(map[*Vertex]int64, len(out))
		for _, v := range out {
			n, err := strconv.ParseInt(v.id, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrNonNumericID, v.id)
			}
			keys[v] = n
		}
		slices.SortStableFunc(out, func(a, b *Vertex) int { return cmp.Compare(keys[b], keys[a]) })
		return out, nil
	}
	key := degreeKey(by)
	keys := make(map[*Vertex]int, len(out))
	for _, v := range out {
		keys[v] = key(v)
	}
	slices.SortStableFunc(out, func(a, b *Vertex) int {
		if desc {
			return cmp.Compare(keys[b], keys[a])
		}
		return cmp.Compare(keys[a], keys[b])
	})
	return out, nil
}

// degreeKey returns the key extractor for one of the degree criteria.
func degreeKey(by Order) func(*Vertex) int {
	switch by {
	case OrderInDegree:
		return (*Vertex).DegreeIn
	case OrderOutDegree:
		return (*Vertex).DegreeOut
	default:
		return (*Vertex).Degree
	}
}

// compareIDs orders identifiers numerically when both parse as integers
// and lexicographically otherwise, so "2" sorts before "10" but "a2"
// sorts after "a10".
func compareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(a, b)
}
