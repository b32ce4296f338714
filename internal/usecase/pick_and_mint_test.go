package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPickAndMint() (*usecase.PickAndMint, *createDeps) {
	d := &createDeps{
		contract: new(MockRaffleContract),
		signer:   new(MockSigner),
		chain:    new(MockChainReader),
		journal:  new(MockJournal),
		progress: &MockProgressSink{},
	}
	uc := usecase.NewPickAndMint(runtimeConfig(), d.contract, d.signer, d.chain, d.journal, noLinks{}, d.progress, quietLogger())
	return uc, d
}

func TestPickAndMint(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves and reads winners", func(t *testing.T) {
		uc, d := newPickAndMint()
		winners := []common.Address{common.HexToAddress(bob)}

		d.signer.On("Address").Return(owner, nil)
		d.contract.On("Address").Return(contract, nil)
		d.contract.On("SimulatePickAndMint", ctx, big.NewInt(4)).Return(nil)
		d.contract.On("PickAndMint", ctx, big.NewInt(4)).Return(&domain.TxReceipt{Hash: common.HexToHash("0x01"), Status: 1}, nil)
		d.chain.On("ChainID", ctx).Return(big.NewInt(100), nil)
		d.journal.On("Record", ctx, mock.MatchedBy(func(e *domain.JournalEntry) bool {
			return e.Kind == domain.JournalPickAndMint && e.RaffleNum == "4" && e.ChainID == 100
		})).Return(nil)
		d.contract.On("Winners", ctx, big.NewInt(4)).Return(winners, nil)
		d.contract.On("NFTImage", ctx, big.NewInt(4)).Return("ipfs://img", nil)

		result, err := uc.Run(ctx, usecase.PickAndMintParams{RaffleNum: "4"})

		require.NoError(t, err)
		assert.Equal(t, winners, result.Winners)
		assert.Equal(t, "ipfs://img", result.NFTImage)
		assert.Empty(t, result.Warnings)
		d.journal.AssertExpectations(t)
	})

	t.Run("not expired is reported without submitting", func(t *testing.T) {
		uc, d := newPickAndMint()

		d.signer.On("Address").Return(owner, nil)
		d.contract.On("Address").Return(contract, nil)
		d.contract.On("SimulatePickAndMint", ctx, big.NewInt(1)).
			Return(&domain.RevertError{Method: "pickAndMint", Reason: "raffle has not expired"})

		_, err := uc.Run(ctx, usecase.PickAndMintParams{RaffleNum: "1"})

		var revertErr *domain.RevertError
		require.True(t, errors.As(err, &revertErr))
		assert.Equal(t, "raffle has not expired", revertErr.Reason)
		d.contract.AssertNotCalled(t, "PickAndMint", mock.Anything, mock.Anything)
	})

	t.Run("invalid raffle number", func(t *testing.T) {
		for _, num := range []string{"", "0", "-1", "x"} {
			uc, d := newPickAndMint()

			_, err := uc.Run(ctx, usecase.PickAndMintParams{RaffleNum: num})

			assert.True(t, errors.Is(err, domain.ErrInvalidRaffleParams), num)
			d.signer.AssertNotCalled(t, "Address")
		}
	})

	t.Run("read back failures become warnings", func(t *testing.T) {
		uc, d := newPickAndMint()

		d.signer.On("Address").Return(owner, nil)
		d.contract.On("Address").Return(contract, nil)
		d.contract.On("SimulatePickAndMint", ctx, mock.Anything).Return(nil)
		d.contract.On("PickAndMint", ctx, mock.Anything).Return(&domain.TxReceipt{Status: 1}, nil)
		d.chain.On("ChainID", ctx).Return(nil, errors.New("timeout"))
		d.journal.On("Record", ctx, mock.Anything).Return(nil)
		d.contract.On("Winners", ctx, mock.Anything).Return(nil, &domain.TransportError{Op: "getWinners", Err: errors.New("timeout")})
		d.contract.On("NFTImage", ctx, mock.Anything).Return("", &domain.TransportError{Op: "getNFTImage", Err: errors.New("timeout")})

		result, err := uc.Run(ctx, usecase.PickAndMintParams{RaffleNum: "2"})

		require.NoError(t, err)
		assert.Len(t, result.Warnings, 2)
		assert.Zero(t, result.ChainID)
	})
}
