package starfield

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"sync"
)

type EntityId uint64
type archetypeId uint64
type archetypeKey []componentId
type componentId uint32
type row int
type set[T comparable] = map[T]struct{}

// Ecs stores components grouped by archetype: every distinct set of component
// types gets its own table of typed slices.
type Ecs struct {
	archetypes  map[archetypeId]*archetype
	entityIndex map[EntityId]archetypeId

	idGeneratorLock sync.Mutex
	entityIdCounter EntityId

	componentIdLock    sync.Mutex
	componentIdCounter componentId
	componentTypeIdMap map[reflect.Type]componentId
	componentIdTypeMap map[componentId]reflect.Type
}

func MakeEcs() Ecs {
	return Ecs{
		archetypes:         make(map[archetypeId]*archetype),
		entityIndex:        make(map[EntityId]archetypeId),
		componentTypeIdMap: make(map[reflect.Type]componentId),
		componentIdTypeMap: make(map[componentId]reflect.Type),
	}
}

type archetype struct {
	id            archetypeId
	key           archetypeKey
	entities      map[EntityId]row
	componentData map[componentId]any // typed slices via reflection
	recycled      []row
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	return ecs.insertEntity(ecs.nextEntityId(), components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	archId, arch := ecs.getOrMakeArchetype(ecs.getArchetypeKey(components...))

	r := ecs.archetypeReserveRow(arch)
	arch.entities[entityId] = r
	for _, component := range components {
		ecs.writeComponent(arch, r, component)
	}
	ecs.entityIndex[entityId] = archId

	return entityId
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return
	}
	arch := ecs.archetypes[archId]

	r := arch.entities[entityId]
	// Zero the row so recycled slots do not keep field buffers alive.
	for _, compId := range arch.key {
		reflectSliceSet(arch.componentData[compId], int(r), reflect.Zero(ecs.componentIdTypeMap[compId]))
	}
	arch.recycled = append(arch.recycled, r)

	delete(arch.entities, entityId)
	delete(ecs.entityIndex, entityId)
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entityIndex[entityId]
	return ok
}

func (ecs *Ecs) entityCount() int {
	return len(ecs.entityIndex)
}

func (ecs *Ecs) writeComponent(dstArch *archetype, dstRow row, component any) {
	componentType, value := componentValue(component)
	reflectSliceSet(dstArch.componentData[ecs.getComponentId(componentType)], int(dstRow), value)
}

// componentValue accepts a struct or a pointer to one and returns the struct.
func componentValue(component any) (reflect.Type, reflect.Value) {
	t := reflect.TypeOf(component)
	v := reflect.ValueOf(component)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
		v = v.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected component to be a struct or a pointer to a struct, got %v", reflect.TypeOf(component)))
	}
	return t, v
}

func (ecs *Ecs) getOrMakeArchetype(key archetypeKey) (archetypeId, *archetype) {
	id := getArchetypeId(key)
	if arch, ok := ecs.archetypes[id]; ok {
		return id, arch
	}

	arch := &archetype{
		id:            id,
		key:           key,
		entities:      make(map[EntityId]row),
		componentData: make(map[componentId]any),
	}
	for _, compId := range key {
		arch.componentData[compId] = reflectSliceMake(ecs.componentIdTypeMap[compId])
	}
	ecs.archetypes[id] = arch
	return id, arch
}

func (ecs *Ecs) archetypeReserveRow(arch *archetype) row {
	if n := len(arch.recycled); n > 0 {
		r := arch.recycled[n-1]
		arch.recycled = arch.recycled[:n-1]
		return r
	}

	r := row(len(arch.entities))
	for _, compId := range arch.key {
		arch.componentData[compId] = reflectSliceAppend(
			arch.componentData[compId],
			reflect.Zero(ecs.componentIdTypeMap[compId]),
		)
	}
	return r
}

// getArchetypeKey returns the sorted, deduplicated component ids of components.
func (ecs *Ecs) getArchetypeKey(components ...any) archetypeKey {
	var key archetypeKey
	for _, component := range components {
		t, _ := componentValue(component)
		key = append(key, ecs.getComponentId(t))
	}
	return dedupAndSortArchetypeKey(key)
}

func dedupAndSortArchetypeKey(key archetypeKey) archetypeKey {
	res := slices.Clone(key)
	slices.Sort(res)
	return slices.Compact(res)
}

func getArchetypeId(key archetypeKey) archetypeId {
	hash := fnv.New64a()
	b := make([]byte, 4)
	for _, compId := range key {
		binary.LittleEndian.PutUint32(b, uint32(compId))
		hash.Write(b)
	}
	return archetypeId(hash.Sum64())
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idGeneratorLock.Lock()
	defer ecs.idGeneratorLock.Unlock()

	id := ecs.entityIdCounter
	ecs.entityIdCounter++
	return id
}

func (ecs *Ecs) getComponentId(componentType reflect.Type) componentId {
	ecs.componentIdLock.Lock()
	defer ecs.componentIdLock.Unlock()

	if id, ok := ecs.componentTypeIdMap[componentType]; ok {
		return id
	}
	id := ecs.componentIdCounter
	ecs.componentIdCounter++
	ecs.componentTypeIdMap[componentType] = id
	ecs.componentIdTypeMap[id] = componentType
	return id
}

// lookupComponentId is getComponentId without registration.
func (ecs *Ecs) lookupComponentId(componentType reflect.Type) (componentId, bool) {
	ecs.componentIdLock.Lock()
	defer ecs.componentIdLock.Unlock()

	id, ok := ecs.componentTypeIdMap[componentType]
	return id, ok
}
