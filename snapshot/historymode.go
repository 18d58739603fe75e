package snapshot

// HistoryMode is the three-way sum of retention policies a node can run
// with (spec §3/GLOSSARY). It is modeled as a closed, comparable value
// rather than a string so that legality checks (§4.4 step 2, §4.5 step
// 4.8) are exhaustive switches instead of string comparisons.
type HistoryMode int

const (
	// Archive keeps every context ever committed.
	Archive HistoryMode = iota
	// Full keeps recent contexts only, but every block body back to genesis.
	Full
	// Rolling additionally prunes old block bodies.
	Rolling
)

func (m HistoryMode) String() string {
	switch m {
	case Archive:
		return "archive"
	case Full:
		return "full"
	case Rolling:
		return "rolling"
	default:
		return "unknown"
	}
}

// historyModeFromOldestLevel derives the HistoryMode implied by the level of the
// oldest block in an imported history array (spec §4.5 step 4.8):
// a snapshot whose history reaches all the way back to the block right
// after genesis implies Full; anything shorter implies Rolling.
func historyModeFromOldestLevel(oldestLevel int32) HistoryMode {
	if oldestLevel == 1 {
		return Full
	}
	return Rolling
}
