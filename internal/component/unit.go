// component/unit.go
package component

// Unit marks a hostile unit in flight during the defense phase.
type Unit struct {
	DefID      string // ID from the unit catalog
	ThreatCost int    // copied from the catalog; granted as the kill reward
	Resolved   bool   // set once the unit arrived or died, guards double counting
}
