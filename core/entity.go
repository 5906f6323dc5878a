package core

// Entity is a unique identifier for an entity in the world
// Zero is never issued and means "no entity"
type Entity uint64
