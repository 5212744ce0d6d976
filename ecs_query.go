package starfield

import (
	"reflect"
)

// Query1 and Query2 visit every live entity carrying the listed components.
// Visit order is unspecified. Returning false from the callback stops the walk.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	id1, ok := identifyComponent[A](q.ecs)
	if !ok {
		return
	}

	for _, arch := range q.ecs.archetypes {
		arg1CompData, ok := arch.componentData[id1]
		if !ok {
			continue
		}
		comps1 := arg1CompData.([]A)

		for entityId, row := range arch.entities {
			if !m(entityId, &comps1[row]) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	id1, ok1 := identifyComponent[A](q.ecs)
	id2, ok2 := identifyComponent[B](q.ecs)
	if !ok1 || !ok2 {
		return
	}

	for _, arch := range q.ecs.archetypes {
		arg1CompData, ok := arch.componentData[id1]
		if !ok {
			continue
		}
		arg2CompData, ok := arch.componentData[id2]
		if !ok {
			continue
		}
		comps1 := arg1CompData.([]A)
		comps2 := arg2CompData.([]B)

		for entityId, row := range arch.entities {
			if !m(entityId, &comps1[row], &comps2[row]) {
				return
			}
		}
	}
}

// Count returns how many entities match the query.
func (q Query1[A]) Count() int {
	n := 0
	q.Map(func(EntityId, *A) bool {
		n++
		return true
	})
	return n
}

// identifyComponent reports false when A was never stored, so no archetype
// can hold it.
func identifyComponent[A any](ecs *Ecs) (componentId, bool) {
	return ecs.lookupComponentId(reflect.TypeFor[A]())
}
