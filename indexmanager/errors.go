package indexmanager

import "errors"

// Sentinel errors for indexmanager operations.
var (
	// ErrNoVehicles indicates a Manager was requested with zero vehicles.
	ErrNoVehicles = errors.New("indexmanager: at least one vehicle is required")

	// ErrNegativeNodes indicates a negative node count was requested.
	ErrNegativeNodes = errors.New("indexmanager: numNodes must be >= 0")

	// ErrStartsEndsLength indicates starts/ends do not have one entry per vehicle.
	ErrStartsEndsLength = errors.New("indexmanager: starts and ends must have length numVehicles")

	// ErrNodeOutOfRange indicates a start/end node id outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("indexmanager: node id out of range")

	// ErrIndexOutOfRange indicates a variable index outside [0, Size()+numVehicles).
	ErrIndexOutOfRange = errors.New("indexmanager: variable index out of range")

	// ErrUnknownNode indicates a node id with no mapped variable index.
	ErrUnknownNode = errors.New("indexmanager: node has no mapped index")
)
