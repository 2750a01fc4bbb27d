package listing

import "github.com/x-xyz/asteroid-market/domain"

// State is what a viewer can do with a listing
type State string

const (
	StateReserve  State = "reserve"
	StateBuy      State = "buy"
	StateCancel   State = "cancel"
	StateReserved State = "reserved"
)

// ResolveState maps a listing, the viewing address and the current height to a state.
// Branch order matters, the first match wins.
func ResolveState(l *Listing, viewer domain.Address, currentHeight int64) State {
	if viewer.IsEmpty() {
		return StateReserve
	}

	expired := l.DepositExpired(currentHeight)

	if l.SellerAddress.Equals(viewer) {
		if !l.IsDeposited || expired {
			return StateCancel
		}
		return StateReserved
	}

	if l.IsDeposited && !expired {
		if l.IsDepositor(viewer) {
			return StateBuy
		}
		return StateReserved
	}

	return StateReserve
}

// NewView resolves l for viewer. A view is actionable only with a connected viewer on a live listing.
func NewView(l *Listing, viewer domain.Address, currentHeight int64) *View {
	state := ResolveState(l, viewer, currentHeight)
	return &View{
		Listing:    l,
		State:      state,
		Actionable: !viewer.IsEmpty() && l.IsActionable() && state != StateReserved,
	}
}
