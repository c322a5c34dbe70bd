package component

// Entity is a per-session unique identifier
type Entity uint64
