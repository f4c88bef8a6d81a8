package tabula

import (
	"github.com/rotisserie/eris"

	"github.com/tabula-ecs/tabula/storage"
	"github.com/tabula-ecs/tabula/types"
)

// Access is the access mode a query requests for one component type. Write
// grants in-place mutation through the yielded pointer; Read declares
// read-only intent. Go cannot make a yielded pointer immutable, so Read is
// enforced at query construction: a query that requests the same component
// type twice fails to construct when either request is Write, which is the
// combination that would alias a mutable reference.
type Access int8

const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

type accessRequest struct {
	name string
	mode Access
}

// validateAccess enforces the aliasing rule across one query's requested
// types: the same component type must not be requested twice with write
// access involved. Distinct types mix freely; duplicate read requests are
// harmless and allowed.
func validateAccess(requests []accessRequest) error {
	for i, a := range requests {
		for _, b := range requests[i+1:] {
			if a.name == b.name && (a.mode == Write || b.mode == Write) {
				return eris.Wrapf(ErrAccessConflict,
					"component %q requested as %s and %s in one query", a.name, a.mode, b.mode)
			}
		}
	}
	return nil
}

// queryStore resolves T's store for query iteration. A missing store is not
// an error: the query simply yields no matches. A same-named store of a
// different Go type is a construction error.
func queryStore[T types.Component](w *World) (*storage.Store[T], error) {
	return lookupStore[T](w)
}

// Query1 yields every live entity holding an A.
//
// All queries iterate lazily: construction captures the world's structural
// version, Next advances to the next match, and Entity/Get read the current
// match. The first requested type's store drives iteration; remaining types
// are membership tests. A query may be abandoned at any point; mutations
// already applied through Write references stay applied.
type Query1[A types.Component] struct {
	world   *World
	a       *storage.Store[A]
	version uint64
	pos     int

	id   types.EntityID
	refA *A
}

func NewQuery1[A types.Component](w *World, modeA Access) (*Query1[A], error) {
	var a A
	if err := validateAccess([]accessRequest{{a.Name(), modeA}}); err != nil {
		return nil, err
	}
	sa, err := queryStore[A](w)
	if err != nil {
		return nil, err
	}
	return &Query1[A]{world: w, a: sa, version: w.version}, nil
}

// Next advances to the next matching entity. It panics if the world saw a
// structural change since the query was constructed.
func (q *Query1[A]) Next() bool {
	if q.a == nil {
		return false
	}
	q.world.mustBeCurrent(q.version)
	for q.pos < q.a.Len() {
		id, refA := q.a.At(q.pos)
		q.pos++
		if !q.world.registry.IsAlive(id) {
			continue
		}
		q.id, q.refA = id, refA
		return true
	}
	return false
}

// Entity returns the current match's ID.
func (q *Query1[A]) Entity() types.EntityID {
	return q.id
}

// Get returns the current match's component reference.
func (q *Query1[A]) Get() *A {
	return q.refA
}

// Query2 yields every live entity holding both an A and a B.
type Query2[A, B types.Component] struct {
	world   *World
	a       *storage.Store[A]
	b       *storage.Store[B]
	version uint64
	pos     int

	id   types.EntityID
	refA *A
	refB *B
}

func NewQuery2[A, B types.Component](w *World, modeA, modeB Access) (*Query2[A, B], error) {
	var a A
	var b B
	if err := validateAccess([]accessRequest{
		{a.Name(), modeA},
		{b.Name(), modeB},
	}); err != nil {
		return nil, err
	}
	sa, err := queryStore[A](w)
	if err != nil {
		return nil, err
	}
	sb, err := queryStore[B](w)
	if err != nil {
		return nil, err
	}
	return &Query2[A, B]{world: w, a: sa, b: sb, version: w.version}, nil
}

func (q *Query2[A, B]) Next() bool {
	if q.a == nil || q.b == nil {
		return false
	}
	q.world.mustBeCurrent(q.version)
	for q.pos < q.a.Len() {
		id, refA := q.a.At(q.pos)
		q.pos++
		if !q.world.registry.IsAlive(id) {
			continue
		}
		refB, ok := q.b.Ref(id)
		if !ok {
			continue
		}
		q.id, q.refA, q.refB = id, refA, refB
		return true
	}
	return false
}

func (q *Query2[A, B]) Entity() types.EntityID {
	return q.id
}

func (q *Query2[A, B]) Get() (*A, *B) {
	return q.refA, q.refB
}

// Query3 yields every live entity holding an A, a B, and a C.
type Query3[A, B, C types.Component] struct {
	world   *World
	a       *storage.Store[A]
	b       *storage.Store[B]
	c       *storage.Store[C]
	version uint64
	pos     int

	id   types.EntityID
	refA *A
	refB *B
	refC *C
}

func NewQuery3[A, B, C types.Component](w *World, modeA, modeB, modeC Access) (*Query3[A, B, C], error) {
	var a A
	var b B
	var c C
	if err := validateAccess([]accessRequest{
		{a.Name(), modeA},
		{b.Name(), modeB},
		{c.Name(), modeC},
	}); err != nil {
		return nil, err
	}
	sa, err := queryStore[A](w)
	if err != nil {
		return nil, err
	}
	sb, err := queryStore[B](w)
	if err != nil {
		return nil, err
	}
	sc, err := queryStore[C](w)
	if err != nil {
		return nil, err
	}
	return &Query3[A, B, C]{world: w, a: sa, b: sb, c: sc, version: w.version}, nil
}

func (q *Query3[A, B, C]) Next() bool {
	if q.a == nil || q.b == nil || q.c == nil {
		return false
	}
	q.world.mustBeCurrent(q.version)
	for q.pos < q.a.Len() {
		id, refA := q.a.At(q.pos)
		q.pos++
		if !q.world.registry.IsAlive(id) {
			continue
		}
		refB, ok := q.b.Ref(id)
		if !ok {
			continue
		}
		refC, ok := q.c.Ref(id)
		if !ok {
			continue
		}
		q.id, q.refA, q.refB, q.refC = id, refA, refB, refC
		return true
	}
	return false
}

func (q *Query3[A, B, C]) Entity() types.EntityID {
	return q.id
}

func (q *Query3[A, B, C]) Get() (*A, *B, *C) {
	return q.refA, q.refB, q.refC
}

// Query4 yields every live entity holding an A, a B, a C, and a D.
type Query4[A, B, C, D types.Component] struct {
	world   *World
	a       *storage.Store[A]
	b       *storage.Store[B]
	c       *storage.Store[C]
	d       *storage.Store[D]
	version uint64
	pos     int

	id   types.EntityID
	refA *A
	refB *B
	refC *C
	refD *D
}

func NewQuery4[A, B, C, D types.Component](
	w *World, modeA, modeB, modeC, modeD Access,
) (*Query4[A, B, C, D], error) {
	var a A
	var b B
	var c C
	var d D
	if err := validateAccess([]accessRequest{
		{a.Name(), modeA},
		{b.Name(), modeB},
		{c.Name(), modeC},
		{d.Name(), modeD},
	}); err != nil {
		return nil, err
	}
	sa, err := queryStore[A](w)
	if err != nil {
		return nil, err
	}
	sb, err := queryStore[B](w)
	if err != nil {
		return nil, err
	}
	sc, err := queryStore[C](w)
	if err != nil {
		return nil, err
	}
	sd, err := queryStore[D](w)
	if err != nil {
		return nil, err
	}
	return &Query4[A, B, C, D]{world: w, a: sa, b: sb, c: sc, d: sd, version: w.version}, nil
}

func (q *Query4[A, B, C, D]) Next() bool {
	if q.a == nil || q.b == nil || q.c == nil || q.d == nil {
		return false
	}
	q.world.mustBeCurrent(q.version)
	for q.pos < q.a.Len() {
		id, refA := q.a.At(q.pos)
		q.pos++
		if !q.world.registry.IsAlive(id) {
			continue
		}
		refB, ok := q.b.Ref(id)
		if !ok {
			continue
		}
		refC, ok := q.c.Ref(id)
		if !ok {
			continue
		}
		refD, ok := q.d.Ref(id)
		if !ok {
			continue
		}
		q.id, q.refA, q.refB, q.refC, q.refD = id, refA, refB, refC, refD
		return true
	}
	return false
}

func (q *Query4[A, B, C, D]) Entity() types.EntityID {
	return q.id
}

func (q *Query4[A, B, C, D]) Get() (*A, *B, *C, *D) {
	return q.refA, q.refB, q.refC, q.refD
}
