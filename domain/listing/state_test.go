package listing

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/asteroid-market/base/ptr"
	"github.com/x-xyz/asteroid-market/domain"
)

const (
	seller    = domain.Address("cosmos1a")
	depositor = domain.Address("cosmos1b")
	stranger  = domain.Address("cosmos1c")
)

type stateTestSuite struct {
	suite.Suite
}

func TestStateTestSuite(t *testing.T) {
	suite.Run(t, new(stateTestSuite))
}

func deposited(timeout int64) *Listing {
	d := depositor
	return &Listing{
		SellerAddress:          seller,
		Total:                  1000,
		DepositTotal:           10,
		IsDeposited:            true,
		DepositorAddress:       &d,
		DepositorTimedoutBlock: ptr.Int64(timeout),
	}
}

func (s *stateTestSuite) TestScenarios() {
	tests := []struct {
		desc    string
		listing *Listing
		viewer  domain.Address
		height  int64
		exp     State
	}{
		{
			desc:    "seller views undeposited listing",
			listing: &Listing{SellerAddress: seller},
			viewer:  seller,
			height:  50,
			exp:     StateCancel,
		},
		{
			desc:    "depositor views active deposit",
			listing: deposited(100),
			viewer:  depositor,
			height:  50,
			exp:     StateBuy,
		},
		{
			desc:    "depositor views expired deposit",
			listing: deposited(100),
			viewer:  depositor,
			height:  150,
			exp:     StateReserve,
		},
		{
			desc:    "stranger views active deposit",
			listing: deposited(100),
			viewer:  stranger,
			height:  50,
			exp:     StateReserved,
		},
		{
			desc:    "seller views active deposit",
			listing: deposited(100),
			viewer:  seller,
			height:  50,
			exp:     StateReserved,
		},
		{
			desc:    "seller views expired deposit",
			listing: deposited(100),
			viewer:  seller,
			height:  101,
			exp:     StateCancel,
		},
		{
			desc:    "timeout equal to height is still active",
			listing: deposited(100),
			viewer:  depositor,
			height:  100,
			exp:     StateBuy,
		},
		{
			desc:    "stranger views undeposited listing",
			listing: &Listing{SellerAddress: seller},
			viewer:  stranger,
			height:  50,
			exp:     StateReserve,
		},
		{
			desc:    "no wallet connected",
			listing: deposited(100),
			viewer:  "",
			height:  50,
			exp:     StateReserve,
		},
		{
			desc:    "address comparison ignores case",
			listing: deposited(100),
			viewer:  domain.Address("COSMOS1B"),
			height:  50,
			exp:     StateBuy,
		},
	}
	for _, t := range tests {
		s.Equal(t.exp, ResolveState(t.listing, t.viewer, t.height), t.desc)
	}
}

func (s *stateTestSuite) TestMissingTimeoutIsExpired() {
	for _, l := range []*Listing{deposited(0), deposited(-1), func() *Listing {
		l := deposited(100)
		l.DepositorTimedoutBlock = nil
		return l
	}()} {
		s.Equal(StateReserve, ResolveState(l, depositor, 1))
		s.Equal(StateReserve, ResolveState(l, stranger, 1))
		s.Equal(StateCancel, ResolveState(l, seller, 1))
		s.False(l.DepositActive(1))
	}
}

// every combination of inputs checked against the listed properties
func (s *stateTestSuite) TestProperties() {
	viewers := []domain.Address{seller, depositor, stranger}
	heights := []int64{0, 50, 99, 100, 101, 1000}
	timeouts := []*int64{nil, ptr.Int64(0), ptr.Int64(100)}
	depositors := []*domain.Address{nil, func() *domain.Address { a := depositor; return &a }()}

	for _, isDeposited := range []bool{true, false} {
		for _, timeout := range timeouts {
			for _, dep := range depositors {
				for _, viewer := range viewers {
					for _, h := range heights {
						l := &Listing{
							SellerAddress:          seller,
							IsDeposited:            isDeposited,
							DepositorAddress:       dep,
							DepositorTimedoutBlock: timeout,
						}
						state := ResolveState(l, viewer, h)
						s.Equal(state, ResolveState(l, viewer, h), "idempotent")

						active := l.DepositActive(h)
						switch {
						case viewer == seller && !active:
							s.Equal(StateCancel, state)
						case viewer == seller && active:
							s.Equal(StateReserved, state)
						case active && l.IsDepositor(viewer):
							s.Equal(StateBuy, state)
						case active:
							s.Equal(StateReserved, state)
						default:
							s.Equal(StateReserve, state)
						}
					}
				}
			}
		}
	}
}

func (s *stateTestSuite) TestNewView() {
	v := NewView(deposited(100), depositor, 50)
	s.Equal(StateBuy, v.State)
	s.True(v.Actionable)

	v = NewView(deposited(100), stranger, 50)
	s.Equal(StateReserved, v.State)
	s.False(v.Actionable)

	v = NewView(&Listing{SellerAddress: seller}, "", 50)
	s.Equal(StateReserve, v.State)
	s.False(v.Actionable)

	filled := &Listing{SellerAddress: seller, IsFilled: true}
	v = NewView(filled, stranger, 50)
	s.False(v.Actionable)
}

func (s *stateTestSuite) TestRemaining() {
	s.Equal(int64(990), deposited(100).Remaining())

	l := deposited(100)
	l.IsDeposited = false
	s.Equal(int64(1000), l.Remaining())
}

func (s *stateTestSuite) TestDepositActiveThroughTimeoutBlock() {
	l := deposited(100)
	s.True(l.DepositActive(99))
	s.True(l.DepositActive(100))
	s.False(l.DepositActive(101))
	s.Equal(StateBuy, ResolveState(l, depositor, 100))
	s.Equal(StateReserve, ResolveState(l, depositor, 101))
}
