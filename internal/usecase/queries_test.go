package usecase_test

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func raffleRecord(n int64) *domain.Raffle {
	return &domain.Raffle{
		RaffleNum:  big.NewInt(n),
		EventNum:   big.NewInt(10 + n),
		WinnersNum: big.NewInt(1),
		Expiry:     big.NewInt(1_700_000_000 + n),
		TokenURI:   "ipfs://x",
	}
}

func zeroRecord() *domain.Raffle {
	return &domain.Raffle{RaffleNum: new(big.Int), EventNum: new(big.Int), WinnersNum: new(big.Int), Expiry: new(big.Int)}
}

func TestShowRaffle(t *testing.T) {
	ctx := context.Background()

	t.Run("with participants and winners", func(t *testing.T) {
		c := new(MockRaffleContract)
		participants := []common.Address{common.HexToAddress(alice), common.HexToAddress(bob)}
		c.On("Raffle", ctx, big.NewInt(2)).Return(raffleRecord(2), nil)
		c.On("Participants", ctx, big.NewInt(2)).Return(participants, true, nil)
		c.On("Winners", ctx, big.NewInt(2)).Return([]common.Address{common.HexToAddress(bob)}, nil)

		result, err := usecase.NewShowRaffle(c).Run(ctx, usecase.ShowRaffleParams{RaffleNum: "2"})

		require.NoError(t, err)
		assert.True(t, result.ParticipantsVisible)
		assert.Equal(t, participants, result.Raffle.Participants)
		assert.True(t, result.Raffle.Resolved())
	})

	t.Run("unknown raffle", func(t *testing.T) {
		c := new(MockRaffleContract)
		c.On("Raffle", ctx, big.NewInt(9)).Return(zeroRecord(), nil)

		_, err := usecase.NewShowRaffle(c).Run(ctx, usecase.ShowRaffleParams{RaffleNum: "9"})

		assert.True(t, errors.Is(err, domain.ErrRaffleNotFound))
		c.AssertNotCalled(t, "Winners", mock.Anything, mock.Anything)
	})
}

func TestGetWinnersAndImage(t *testing.T) {
	ctx := context.Background()
	c := new(MockRaffleContract)
	c.On("Winners", ctx, big.NewInt(1)).Return([]common.Address{}, nil)
	c.On("NFTImage", ctx, big.NewInt(1)).Return("", nil)

	winners, err := usecase.NewGetWinners(c).Run(ctx, usecase.GetWinnersParams{RaffleNum: "1"})
	require.NoError(t, err)
	assert.Empty(t, winners.Winners)

	image, err := usecase.NewGetNFTImage(c).Run(ctx, usecase.GetNFTImageParams{RaffleNum: "1"})
	require.NoError(t, err)
	assert.Equal(t, "", image.Image)

	_, err = usecase.NewGetWinners(c).Run(ctx, usecase.GetWinnersParams{RaffleNum: "0"})
	assert.True(t, errors.Is(err, domain.ErrInvalidRaffleParams))
}

func TestShowContractInfo(t *testing.T) {
	ctx := context.Background()
	c := new(MockRaffleContract)
	chain := new(MockChainReader)
	c.On("Address").Return(contract, nil)
	c.On("Name", ctx).Return("POAPRaffle", nil)
	c.On("LastRaffleCount", ctx).Return(big.NewInt(3), nil)
	chain.On("ChainID", ctx).Return(big.NewInt(31337), nil)

	result, err := usecase.NewShowContractInfo(runtimeConfig(), c, chain, noLinks{}).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "POAPRaffle", result.Info.Name)
	assert.Equal(t, "3", result.Info.LastRaffleCount.String())
	assert.Equal(t, contract, result.Info.Address)
	assert.Equal(t, uint64(31337), result.ChainID)
}

func TestListRaffles(t *testing.T) {
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		c := new(MockRaffleContract)
		c.On("LastRaffleCount", ctx).Return(big.NewInt(3), nil)
		c.On("Raffle", ctx, big.NewInt(1)).Return(raffleRecord(1), nil)
		c.On("Raffle", ctx, big.NewInt(2)).Return(zeroRecord(), nil)
		c.On("Raffle", ctx, big.NewInt(3)).Return(raffleRecord(3), nil)
		progress := &MockProgressSink{}

		result, err := usecase.NewListRaffles(c, progress).Run(ctx, usecase.ListRafflesParams{})

		require.NoError(t, err)
		require.Len(t, result.Raffles, 2)
		assert.Equal(t, "1", result.Raffles[0].RaffleNum.String())
		assert.Equal(t, "3", result.Raffles[1].RaffleNum.String())
		assert.Equal(t, 3, progress.events[2].Current)
		assert.Equal(t, 3, progress.events[2].Total)
	})

	t.Run("limit keeps the newest", func(t *testing.T) {
		c := new(MockRaffleContract)
		c.On("LastRaffleCount", ctx).Return(big.NewInt(5), nil)
		c.On("Raffle", ctx, big.NewInt(4)).Return(raffleRecord(4), nil)
		c.On("Raffle", ctx, big.NewInt(5)).Return(raffleRecord(5), nil)

		result, err := usecase.NewListRaffles(c, usecase.NopProgress{}).Run(ctx, usecase.ListRafflesParams{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, result.Raffles, 2)
		c.AssertNumberOfCalls(t, "Raffle", 2)
	})

	t.Run("count beyond int64 is rejected", func(t *testing.T) {
		c := new(MockRaffleContract)
		c.On("LastRaffleCount", ctx).Return(new(big.Int).Lsh(big.NewInt(1), 63), nil)

		_, err := usecase.NewListRaffles(c, usecase.NopProgress{}).Run(ctx, usecase.ListRafflesParams{})

		assert.ErrorContains(t, err, "out of range")
		c.AssertNotCalled(t, "Raffle", mock.Anything, mock.Anything)
	})

	t.Run("limit on a huge count reads only the window", func(t *testing.T) {
		total := big.NewInt(math.MaxInt64)
		c := new(MockRaffleContract)
		c.On("LastRaffleCount", ctx).Return(total, nil)
		c.On("Raffle", ctx, big.NewInt(math.MaxInt64)).Return(zeroRecord(), nil)

		result, err := usecase.NewListRaffles(c, usecase.NopProgress{}).Run(ctx, usecase.ListRafflesParams{Limit: 1})

		require.NoError(t, err)
		assert.Empty(t, result.Raffles)
		c.AssertNumberOfCalls(t, "Raffle", 1)
	})

	t.Run("none yet", func(t *testing.T) {
		c := new(MockRaffleContract)
		c.On("LastRaffleCount", ctx).Return(big.NewInt(0), nil)

		result, err := usecase.NewListRaffles(c, usecase.NopProgress{}).Run(ctx, usecase.ListRafflesParams{Limit: 10})

		require.NoError(t, err)
		assert.Empty(t, result.Raffles)
	})
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	wei := new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18))

	t.Run("explicit address", func(t *testing.T) {
		chain := new(MockChainReader)
		chain.On("Balance", ctx, common.HexToAddress(alice)).Return(wei, nil)

		result, err := usecase.NewGetBalance(runtimeConfig(), chain, new(MockSigner)).Run(ctx, usecase.GetBalanceParams{Address: alice})

		require.NoError(t, err)
		assert.Equal(t, "argument", result.Source)
		assert.Equal(t, "3.000000", result.Balance.Ether())
	})

	t.Run("profile account before signer", func(t *testing.T) {
		cfg := runtimeConfig()
		cfg.Network.Account = bob
		chain := new(MockChainReader)
		chain.On("Balance", ctx, common.HexToAddress(bob)).Return(wei, nil)
		signer := new(MockSigner)

		result, err := usecase.NewGetBalance(cfg, chain, signer).Run(ctx, usecase.GetBalanceParams{})

		require.NoError(t, err)
		assert.Equal(t, "account", result.Source)
		signer.AssertNotCalled(t, "Address")
	})

	t.Run("falls back to signer", func(t *testing.T) {
		chain := new(MockChainReader)
		chain.On("Balance", ctx, owner).Return(wei, nil)
		signer := new(MockSigner)
		signer.On("Address").Return(owner, nil)

		result, err := usecase.NewGetBalance(runtimeConfig(), chain, signer).Run(ctx, usecase.GetBalanceParams{})

		require.NoError(t, err)
		assert.Equal(t, "signer", result.Source)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := usecase.NewGetBalance(runtimeConfig(), new(MockChainReader), new(MockSigner)).Run(ctx, usecase.GetBalanceParams{Address: "0xzz"})

		assert.True(t, domain.IsConfigError(err))
	})
}

func TestGetChainTime(t *testing.T) {
	ctx := context.Background()
	chain := new(MockChainReader)
	ts := time.Now().Add(-30 * time.Second).Truncate(time.Second)
	chain.On("LatestBlock", ctx).Return(&domain.BlockInfo{Number: 42, Timestamp: ts}, nil)

	result, err := usecase.NewGetChainTime(runtimeConfig(), chain).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), result.Block.Number)
	assert.GreaterOrEqual(t, result.Drift, 29*time.Second)

	failing := new(MockChainReader)
	failing.On("LatestBlock", ctx).Return(nil, &domain.TransportError{Op: "eth_blockNumber", Err: errors.New("refused")})
	_, err = usecase.NewGetChainTime(runtimeConfig(), failing).Run(ctx)
	assert.True(t, domain.IsTransportError(err))
}

func TestListNetworks(t *testing.T) {
	ctx := context.Background()
	resolver := new(MockNetworkResolver)
	prober := new(MockProber)

	resolver.On("GetNetworks", ctx).Return([]string{"gnosis", "localhost"})
	resolver.On("ResolveNetwork", ctx, "gnosis").Return(nil, &domain.ConfigError{Field: "networks.gnosis.url", Err: errors.New("empty RPC URL")})
	resolver.On("ResolveNetwork", ctx, "localhost").Return(&config.Network{Name: "localhost", RPCURL: "http://127.0.0.1:8545"}, nil)
	prober.On("ProbeChainID", mock.Anything, "http://127.0.0.1:8545").Return(uint64(31337), nil)

	result, err := usecase.NewListNetworks(runtimeConfig(), resolver, prober).Run(ctx, usecase.ListNetworksParams{Probe: true})

	require.NoError(t, err)
	require.Len(t, result.Networks, 2)
	assert.Error(t, result.Networks[0].Error)
	assert.False(t, result.Networks[0].Current)
	assert.True(t, result.Networks[1].Current)
	assert.Equal(t, uint64(31337), result.Networks[1].ChainID)
	prober.AssertNumberOfCalls(t, "ProbeChainID", 1)
}

func TestListHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the current network", func(t *testing.T) {
		journal := new(MockJournal)
		journal.On("List", ctx, domain.JournalFilter{Network: "localhost", Limit: 5}).
			Return([]*domain.JournalEntry{{Kind: domain.JournalCreate}}, nil)

		result, err := usecase.NewListHistory(runtimeConfig(), journal).Run(ctx, usecase.ListHistoryParams{Limit: 5})

		require.NoError(t, err)
		assert.True(t, result.Enabled)
		assert.Len(t, result.Entries, 1)
	})

	t.Run("disabled journal", func(t *testing.T) {
		cfg := runtimeConfig()
		cfg.Journal = false
		journal := new(MockJournal)

		result, err := usecase.NewListHistory(cfg, journal).Run(ctx, usecase.ListHistoryParams{})

		require.NoError(t, err)
		assert.False(t, result.Enabled)
		journal.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
