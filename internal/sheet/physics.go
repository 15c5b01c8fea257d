package sheet

// Physics decides what motion the sheet performs when it is released or
// asked to settle. Implementations live outside this package; the
// controller only consumes the returned simulations.
//
// Returning nil declines: no motion is needed and the controller goes
// idle. A decline is a normal outcome, not an error.
type Physics interface {
	// BallisticSimulation returns the motion for a release with the given
	// velocity, in offset units per second, or nil to decline.
	BallisticSimulation(m Snapshot, velocity float64) Simulation
	// SettleSimulation returns the motion that brings the sheet to rest at
	// a policy-preferred position, or nil if it is already there.
	SettleSimulation(m Snapshot) Simulation
}
