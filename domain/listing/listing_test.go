package listing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/asteroid-market/base/ptr"
	"github.com/x-xyz/asteroid-market/domain"
)

func TestDiff(t *testing.T) {
	req := require.New(t)

	open := func(hash string) *Listing {
		return &Listing{TransactionHash: domain.TxHash(hash), SellerAddress: seller, Total: 100}
	}
	reserved := func(hash string, until int64) *Listing {
		l := open(hash)
		d := depositor
		l.IsDeposited = true
		l.DepositTotal = 1
		l.DepositorAddress = &d
		l.DepositorTimedoutBlock = ptr.Int64(until)
		return l
	}

	req.Empty(Diff(nil, nil))
	req.Empty(Diff([]*Listing{open("A"), open("B")}, []*Listing{open("B"), open("A")}))
	req.Empty(Diff([]*Listing{reserved("A", 10)}, []*Listing{reserved("A", 10)}))

	req.Equal([]domain.TxHash{"C"}, Diff([]*Listing{open("A")}, []*Listing{open("A"), open("C")}))
	req.Equal([]domain.TxHash{"A"}, Diff([]*Listing{open("A"), open("B")}, []*Listing{open("B")}))
	req.Equal([]domain.TxHash{"A"}, Diff([]*Listing{open("A")}, []*Listing{reserved("A", 10)}))
	req.Equal([]domain.TxHash{"A"}, Diff([]*Listing{reserved("A", 10)}, []*Listing{reserved("A", 20)}))

	filled := open("B")
	filled.IsFilled = true
	req.Equal([]domain.TxHash{"B", "A"}, Diff([]*Listing{open("A"), open("B")}, []*Listing{filled}))
}
