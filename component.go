package ecslab

import "reflect"

var (
	nextComponentID ComponentID
	typeToComponent = make(map[reflect.Type]ComponentID, MaxComponents)
	componentToType = make(map[ComponentID]reflect.Type, MaxComponents)
)

// ResetComponentRegistry clears the process-wide component type registry.
// It exists for test isolation -- tests that register many throwaway
// component types would otherwise exhaust MaxComponents across a long test
// binary run.
func ResetComponentRegistry() {
	nextComponentID = 0
	typeToComponent = make(map[reflect.Type]ComponentID, MaxComponents)
	componentToType = make(map[ComponentID]reflect.Type, MaxComponents)
}

// ComponentIDOf returns the ComponentID for T, assigning one on first use.
// Assignment order is process-local and not portable across runs. Panics if
// more than MaxComponents distinct types are ever registered.
func ComponentIDOf[T any]() ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := typeToComponent[t]; ok {
		return id
	}
	assertf(int(nextComponentID) < MaxComponents, "too many component types (max %d), registering %s", MaxComponents, t)
	id := nextComponentID
	typeToComponent[t] = id
	componentToType[id] = t
	nextComponentID++
	return id
}

// TryComponentIDOf returns the ComponentID already assigned to T, without
// assigning a new one. It reports false if T has never been used.
func TryComponentIDOf[T any]() (ComponentID, bool) {
	id, ok := typeToComponent[reflect.TypeFor[T]()]
	return id, ok
}
