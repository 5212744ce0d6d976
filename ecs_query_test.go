package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Map(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }
	type Comp3 struct{}

	ecs := MakeEcs()
	ecs.addEntity(Comp1{a: 1})                                 // comp1 only                       -- shouldn't match
	id2 := ecs.addEntity(Comp1{a: 2}, Comp2{b: 1.37})          // comp1 & comp2                    -- should match
	id3 := ecs.addEntity(Comp1{a: 3}, Comp2{b: 4.20}, Comp3{}) // comp1 & comp2 + something extra  -- should match
	ecs.addEntity(Comp1{a: 4}, Comp3{})                        // comp1 + something extra          -- shouldn't match
	ecs.addEntity(Comp2{b: 3.14})                              // comp2 only                       -- shouldn't match

	query := Query2[Comp1, Comp2]{ecs: &ecs}

	got := map[EntityId]int{}
	query.Map(func(entityId EntityId, comp1 *Comp1, comp2 *Comp2) bool {
		got[entityId] = comp1.a
		return true
	})

	assert.Equal(t, map[EntityId]int{id2: 2, id3: 3}, got)
}

func TestQuery_MapWritesThrough(t *testing.T) {
	type Comp1 struct{ a int }

	ecs := MakeEcs()
	eid := ecs.addEntity(Comp1{a: 1})

	q := Query1[Comp1]{ecs: &ecs}
	q.Map(func(_ EntityId, c *Comp1) bool {
		c.a = 10
		return true
	})

	q.Map(func(id EntityId, c *Comp1) bool {
		assert.Equal(t, eid, id)
		assert.Equal(t, 10, c.a)
		return true
	})
}

func TestQuery_MapStopsEarly(t *testing.T) {
	type Comp1 struct{ a int }

	ecs := MakeEcs()
	for i := 0; i < 5; i++ {
		ecs.addEntity(Comp1{a: i})
	}

	visits := 0
	Query1[Comp1]{ecs: &ecs}.Map(func(EntityId, *Comp1) bool {
		visits++
		return visits < 2
	})
	assert.Equal(t, 2, visits)
	assert.Equal(t, 5, Query1[Comp1]{ecs: &ecs}.Count())
}

func TestQuery_UnknownComponent(t *testing.T) {
	type Never struct{}

	ecs := MakeEcs()
	ecs.addEntity(posComp{})

	assert.Equal(t, 0, Query1[Never]{ecs: &ecs}.Count())
	Query2[posComp, Never]{ecs: &ecs}.Map(func(EntityId, *posComp, *Never) bool {
		t.Fatal("no entity has Never")
		return false
	})
}

func TestQuery_SkipsRemovedEntities(t *testing.T) {
	ecs := MakeEcs()
	e1 := ecs.addEntity(tagComp{"gone"})
	ecs.addEntity(tagComp{"kept"})
	ecs.removeEntity(e1)

	var names []string
	Query1[tagComp]{ecs: &ecs}.Map(func(_ EntityId, c *tagComp) bool {
		names = append(names, c.name)
		return true
	})
	assert.Equal(t, []string{"kept"}, names)
}
