// Package services runs the non-ECS subsystems of a session: audio output and the metrics endpoint.
package services

import "github.com/lixenwraith/shipwright/engine"

// Service defines the lifecycle interface for non-ECS subsystems
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies lists services that must start first
	Dependencies() []string

	// Init receives the world for resource injection
	Init(w *engine.World) error

	// Start begins service operation
	// Called after all services are initialized
	Start() error

	// Stop halts service operation and releases resources
	Stop() error
}
