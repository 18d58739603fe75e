// Package interrupt provides the cooperative-cancellation helper of the
// snapshot engine (spec §5). It is checked on every block-store and
// chain-data-store read and write, and once per step of the pruned-block
// iterator, the bulk-storage loop and the reconstruction loop; context
// checkouts, validator calls and progress calls do not check it
// themselves.
//
// The teacher package references exactly this shape
// (interrupt.IsCancelled(ctx), interrupt.ErrCanceled) from
// database/mpt/io/verification_proof.go without shipping the package
// itself in this retrieval pack; it is authored here to match that
// call-site.
package interrupt

import (
	"context"

	"github.com/cernak/tezos/common"
)

// ErrCanceled is returned by long-running operations when the context
// passed to them is done.
const ErrCanceled = common.ConstError("operation canceled")

// IsCancelled reports whether ctx has been canceled or has exceeded its
// deadline. Callers check this at suspension points rather than plumbing
// ctx.Err() through every layer by hand.
func IsCancelled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
