// internal/types/types.go
package types

// EntityID identifies a single entity in the ECS.
type EntityID uint64
