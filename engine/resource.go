package engine

import (
	"reflect"
)

// ResourceStore keeps world-global singletons keyed by type
// Used for cross-system state that is not per-entity: time, input
// snapshot, camera state, particle buffer
type ResourceStore struct {
	resources map[reflect.Type]any
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{resources: make(map[reflect.Type]any)}
}

// AddResource registers or replaces the resource of type T
func AddResource[T any](rs *ResourceStore, res T) {
	rs.resources[reflect.TypeOf(res)] = res
}

// GetResource fetches the resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	var zero T
	if res, ok := rs.resources[reflect.TypeOf(zero)]; ok {
		return res.(T), true
	}
	return zero, false
}

// MustGetResource fetches the resource of type T, panicking when absent
// Reserved for wiring errors that cannot occur after construction
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var zero T
		panic("resource not registered: " + reflect.TypeOf(zero).String())
	}
	return res
}

func (rs *ResourceStore) clear() {
	rs.resources = make(map[reflect.Type]any)
}
