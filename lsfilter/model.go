package lsfilter

import "github.com/arcrouting/vrproute/dimension"

// Model is the narrow view of a VRP model a Filter needs. routing.Model
// satisfies it structurally; lsfilter never imports package routing (see
// doc.go).
type Model interface {
	Size() int
	NumVehicles() int
	Start(v int) int
	End(v int) int
	IsStart(i int) bool
	IsEnd(i int) bool
	NextVar(i int) int
	VehicleVar(i int) int
	ActiveVar(i int) int
	GetArcCostForVehicle(i, j, v int) int64

	DimensionNames() []string
	GetDimensionOrNil(name string) *dimension.Dimension

	Disjunctions() []struct {
		Indices        []int
		Penalty        int64
		MaxCardinality int
	}
	PickupDeliveryPairs() [][2]int
	PolicyCode(v int) int // 0=Any, 1=LIFO, 2=FIFO, matching routing.PDPolicy's iota

	VisitType(index int) int
	TypesIncompatible(typeA, typeB int) bool
}

const (
	policyAny = iota
	policyLIFO
	policyFIFO
)
