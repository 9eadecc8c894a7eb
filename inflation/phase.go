package inflation

// Phase of the inflation schedule an era belongs to.
type Phase uint8

const (
	// PhaseGrowth mints according to the decaying bonus formula.
	PhaseGrowth Phase = iota
	// PhaseCutover mints once up to the final supply target.
	PhaseCutover
	// PhaseTerminal mints nothing.
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseGrowth:
		return "growth"
	case PhaseCutover:
		return "cutover"
	case PhaseTerminal:
		return "terminal"
	}
	return "unknown"
}
