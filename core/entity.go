package core

// Entity is a unique identifier for an entity
// IDs are monotonic and never reused; a destroyed id simply misses all lookups
type Entity uint64

// InvalidEntity is the zero id, never assigned to a live entity
const InvalidEntity Entity = 0
