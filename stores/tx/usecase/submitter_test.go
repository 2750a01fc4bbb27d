package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/tx"
	txMocks "github.com/x-xyz/asteroid-market/domain/tx/mocks"
	walletMocks "github.com/x-xyz/asteroid-market/domain/wallet/mocks"
	lcdMocks "github.com/x-xyz/asteroid-market/service/lcd/mocks"
)

const (
	buyer  = domain.Address("cosmos1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh8mx2")
	seller = domain.Address("cosmos1qyqszqgpqyqszqgpqyqszqgpqyqszqgpjnp7du")
)

type submitterTestSuite struct {
	suite.Suite
	wallet    *walletMocks.Provider
	estimator *txMocks.FeeEstimator
	waiter    *txMocks.Waiter
	lcd       *lcdMocks.Client
	im        tx.Submitter
}

func (s *submitterTestSuite) SetupTest() {
	s.wallet = &walletMocks.Provider{}
	s.estimator = &txMocks.FeeEstimator{}
	s.waiter = &txMocks.Waiter{}
	s.lcd = &lcdMocks.Client{}
	s.im = NewSubmitter(&SubmitterCfg{
		Wallet:    s.wallet,
		Estimator: s.estimator,
		Waiter:    s.waiter,
		Lcd:       s.lcd,
		Denom:     "uatom",
	})
}

func (s *submitterTestSuite) TearDownTest() {
	s.wallet.AssertExpectations(s.T())
	s.estimator.AssertExpectations(s.T())
	s.waiter.AssertExpectations(s.T())
	s.lcd.AssertExpectations(s.T())
}

func TestSubmitterTestSuite(t *testing.T) {
	suite.Run(t, new(submitterTestSuite))
}

func newIntent() *tx.Intent {
	return &tx.Intent{
		ChainId: "cosmoshub-4",
		Sender:  buyer,
		Messages: []tx.MsgSend{{
			FromAddress: buyer,
			ToAddress:   seller,
			Amount:      []tx.Coin{{Denom: "uatom", Amount: 1000}},
		}},
		Memo: "urn:marketplace:gaia@v1;deposit$h=" + hash.String(),
	}
}

var fee = &tx.Fee{Gas: 100000, Amount: []tx.Coin{{Denom: "uatom", Amount: 500}}}

func (s *submitterTestSuite) TestSubmit() {
	intent := newIntent()
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.estimator.On("Estimate", mock.Anything, intent).Return(fee, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.NewFromInt(1500), nil).Once()
	s.wallet.On("SignAndBroadcast", mock.Anything, intent).Return(hash, nil).Once()
	s.waiter.On("Wait", mock.Anything, hash).Return(&tx.Receipt{TxHash: hash, Status: tx.StatusConfirmed}, nil).Once()

	r, err := s.im.Submit(mockCtx, intent)
	s.NoError(err)
	s.Equal(tx.StatusConfirmed, r.Status)
	s.Equal(fee, intent.Fee)
}

func (s *submitterTestSuite) TestSubmitStillIndexing() {
	intent := newIntent()
	intent.Fee = fee
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.NewFromInt(1500), nil).Once()
	s.wallet.On("SignAndBroadcast", mock.Anything, intent).Return(hash, nil).Once()
	s.waiter.On("Wait", mock.Anything, hash).Return(&tx.Receipt{TxHash: hash, Status: tx.StatusPending, StillIndexing: true}, nil).Once()

	r, err := s.im.Submit(mockCtx, intent)
	s.NoError(err)
	s.True(r.StillIndexing)
}

func (s *submitterTestSuite) TestSubmitSenderMismatch() {
	intent := newIntent()
	s.wallet.On("Address", mock.Anything).Return(seller, nil).Once()

	_, err := s.im.Submit(mockCtx, intent)
	s.Equal(domain.ErrorKindValidation, domain.KindOf(err))
	s.ErrorIs(err, domain.ErrSignerMismatch)
}

func (s *submitterTestSuite) TestSubmitInsufficientFunds() {
	intent := newIntent()
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.estimator.On("Estimate", mock.Anything, intent).Return(fee, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.NewFromInt(1499), nil).Once()

	_, err := s.im.Submit(mockCtx, intent)
	s.Equal(domain.ErrorKindEstimation, domain.KindOf(err))
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.NotEmpty(domain.HintOf(err))
}

func (s *submitterTestSuite) TestSubmitAccountNotFound() {
	intent := newIntent()
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.estimator.On("Estimate", mock.Anything, intent).Return(fee, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.Zero, domain.ErrAccountNotFound).Once()

	_, err := s.im.Submit(mockCtx, intent)
	s.Equal(domain.ErrorKindEstimation, domain.KindOf(err))
	s.ErrorIs(err, domain.ErrAccountNotFound)
}

func (s *submitterTestSuite) TestSubmitRejected() {
	intent := newIntent()
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.estimator.On("Estimate", mock.Anything, intent).Return(fee, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.NewFromInt(5000), nil).Once()
	s.wallet.On("SignAndBroadcast", mock.Anything, intent).Return(domain.TxHash(""), domain.ErrRequestRejected).Once()

	r, err := s.im.Submit(mockCtx, intent)
	s.Nil(r)
	s.Equal(domain.ErrorKindTransaction, domain.KindOf(err))
	s.Equal("You rejected the request in your wallet", domain.FriendlyMessage(err))
}

func (s *submitterTestSuite) TestSubmitOnChainFailure() {
	intent := newIntent()
	errFailed := domain.NewTransactionError("confirm", errors.New("already deposited"))
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.estimator.On("Estimate", mock.Anything, intent).Return(fee, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.NewFromInt(5000), nil).Once()
	s.wallet.On("SignAndBroadcast", mock.Anything, intent).Return(hash, nil).Once()
	s.waiter.On("Wait", mock.Anything, hash).Return(&tx.Receipt{TxHash: hash, Status: tx.StatusFailed, Message: "already deposited"}, errFailed).Once()

	r, err := s.im.Submit(mockCtx, intent)
	s.Equal(errFailed, err)
	s.Equal(tx.StatusFailed, r.Status)
}

func (s *submitterTestSuite) TestBroadcastRefusedAfterSigning() {
	intent := newIntent()
	intent.Fee = fee
	s.wallet.On("Address", mock.Anything).Return(buyer, nil).Once()
	s.lcd.On("Balance", mock.Anything, buyer, "uatom").Return(decimal.NewFromInt(5000), nil).Once()
	s.wallet.On("SignAndBroadcast", mock.Anything, intent).Return(hash, errors.New("out of gas")).Once()

	h, err := s.im.Broadcast(mockCtx, intent)
	s.Equal(hash, h)
	s.Equal(domain.ErrorKindTransaction, domain.KindOf(err))
}

func (s *submitterTestSuite) TestWaitKeepsHashOnError() {
	s.waiter.On("Wait", mock.Anything, hash).Return(nil, errors.New("indexer unreachable")).Once()

	r, err := s.im.Wait(mockCtx, hash)
	s.Error(err)
	s.Equal(hash, r.TxHash)
	s.Equal(tx.StatusPending, r.Status)
	s.True(r.StillIndexing)
}
