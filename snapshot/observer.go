package snapshot

// ProgressObserver receives progress notifications from long-running
// engine operations. Modeled on mpt.VerificationObserver, which
// database/mpt/io/verification_proof.go drives with the exact
// StartX/Progress/EndX rhythm used here.
type ProgressObserver interface {
	StartExport()
	StartImport()
	// Progress reports a human-readable status line. Emitted roughly
	// every 1000 blocks during consistency checking (spec §4.3) and
	// bulk storage (spec §4.5 C5a), and on every step during context
	// reconstruction (spec §4.5 C5b).
	Progress(message string)
	EndExport(err error)
	EndImport(err error)
}

// NoopObserver discards all progress notifications. It is the default
// when a caller does not care about progress reporting.
type NoopObserver struct{}

func (NoopObserver) StartExport()        {}
func (NoopObserver) StartImport()        {}
func (NoopObserver) Progress(string)     {}
func (NoopObserver) EndExport(error)     {}
func (NoopObserver) EndImport(error)     {}

// every reports whether count has just crossed a multiple of window,
// i.e. whether this is a good moment to call Progress. Shared by the
// consistency checker and the bulk-storage loop so the "roughly every N"
// cadence in the spec is implemented once.
func every(count, window int) bool {
	return window > 0 && count%window == 0
}
