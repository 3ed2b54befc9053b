package ecslab

import "reflect"

// MaxEventTypes bounds the number of distinct event types a single EventBus
// can register.
const MaxEventTypes = 256

// EventBus is a type-safe publish/subscribe bus for decoupled notification
// between a World and whatever else in an application cares about entity
// lifecycle. A World only touches its bus when one is attached via
// WithEvents, so Publish's cost is entirely opt-in.
//
// Publish is allocation-free once a type has been seen by Subscribe.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]interface{}
	nextEventTypeID uint8
}

// Subscribe registers handler to run for every event of type T published on
// bus, in subscription order.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeFor[T]()
	id := bus.getEventTypeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]interface{}, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish runs every handler subscribed to T, synchronously, in subscription
// order. A type with no subscribers costs a single map lookup.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeFor[T]()
	if id, ok := bus.eventTypeMap[t]; ok {
		hs := bus.handlers[id]
		for _, h := range hs {
			h.(func(T))(event)
		}
	}
}

func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	assertf(len(bus.eventTypeMap) < MaxEventTypes, "too many event types (max %d)", MaxEventTypes)
	id := bus.nextEventTypeID
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}

// EntityCreated is published after World.Create allocates a new entity.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed is published after World.Destroy has torn down an
// entity's components and freed its slot.
type EntityDestroyed struct {
	Entity Entity
}

// ComponentAdded is published after Add attaches a new T to an entity. Not
// published when Add is a no-op because the entity already had one.
type ComponentAdded[T any] struct {
	Entity Entity
}

// ComponentRemoved is published after Remove detaches a T from an entity.
type ComponentRemoved[T any] struct {
	Entity Entity
}
