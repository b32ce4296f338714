package render

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	alice    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	fixedNow = time.Unix(1_700_000_000, 0)
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func sampleRaffle() *domain.Raffle {
	return &domain.Raffle{
		RaffleNum:    big.NewInt(3),
		EventNum:     big.NewInt(1234),
		WinnersNum:   big.NewInt(1),
		Expiry:       big.NewInt(fixedNow.Unix() - 60),
		TokenURI:     "ipfs://token",
		Participants: []common.Address{alice, bob},
		Winners:      []common.Address{bob},
		NFTImage:     "ipfs://token",
	}
}

func TestRenderWinners(t *testing.T) {
	t.Run("text prints one address per line", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewRaffleRenderer(&buf, FormatText).RenderWinners(&usecase.GetWinnersResult{
			RaffleNum: big.NewInt(3),
			Winners:   []common.Address{alice, bob},
		})
		require.NoError(t, err)
		assert.Equal(t, alice.Hex()+"\n"+bob.Hex()+"\n", buf.String())
	})

	t.Run("text without winners", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewRaffleRenderer(&buf, FormatText).RenderWinners(&usecase.GetWinnersResult{RaffleNum: big.NewInt(3)})
		require.NoError(t, err)
		assert.Equal(t, "No winners for raffle #3 yet\n", buf.String())
	})

	t.Run("json keeps an empty list", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewRaffleRenderer(&buf, FormatJSON).RenderWinners(&usecase.GetWinnersResult{RaffleNum: big.NewInt(3)})
		require.NoError(t, err)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "3", out["raffleNum"])
		assert.Equal(t, []interface{}{}, out["winners"])
	})
}

func TestRenderRaffle(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRaffleRenderer(&buf, FormatText)
		r.now = func() time.Time { return fixedNow }

		err := r.RenderRaffle(&usecase.ShowRaffleResult{Raffle: sampleRaffle(), ParticipantsVisible: true})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Raffle #3")
		assert.Contains(t, out, "1234")
		assert.Contains(t, out, "ipfs://token")
		assert.Contains(t, out, "resolved")
		assert.Contains(t, out, "Participants (2)")
		assert.Contains(t, out, "Winners (1)")
		assert.Contains(t, out, bob.Hex())
	})

	t.Run("open raffle", func(t *testing.T) {
		raffle := sampleRaffle()
		raffle.Winners = nil
		raffle.Expiry = big.NewInt(fixedNow.Unix() + 3600)

		var buf bytes.Buffer
		r := NewRaffleRenderer(&buf, FormatText)
		r.now = func() time.Time { return fixedNow }
		require.NoError(t, r.RenderRaffle(&usecase.ShowRaffleResult{Raffle: raffle}))

		assert.Contains(t, buf.String(), "open")
		assert.Contains(t, buf.String(), "in 1h0m0s")
		assert.NotContains(t, buf.String(), "Participants")
	})

	t.Run("yaml uses decimal strings", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRaffleRenderer(&buf, FormatYAML).RenderRaffle(&usecase.ShowRaffleResult{Raffle: sampleRaffle()}))

		var out map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "3", out["raffleNum"])
		assert.Equal(t, "1234", out["eventNum"])
		assert.Equal(t, "ipfs://token", out["tokenURI"])
		assert.Equal(t, []interface{}{bob.Hex()}, out["winners"])
	})
}

func TestRenderCreate_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewRaffleRenderer(&buf, FormatJSON).RenderCreate(&usecase.CreateRaffleResult{
		Contract:  contract,
		Predicted: big.NewInt(3),
		Tx: &domain.TxReceipt{
			Hash:        common.HexToHash("0x01"),
			From:        alice,
			BlockNumber: 12,
			GasUsed:     21000,
			Status:      1,
		},
		ChainID:     31337,
		ExplorerURL: "",
		Raffle:      sampleRaffle(),
	})
	require.NoError(t, err)

	var out struct {
		Contract  string `json:"contract"`
		RaffleNum string `json:"raffleNum"`
		ChainID   uint64 `json:"chainId"`
		Tx        struct {
			Status      string `json:"status"`
			BlockNumber uint64 `json:"blockNumber"`
		} `json:"tx"`
		Raffle struct {
			Expiry string `json:"expiry"`
		} `json:"raffle"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, contract.Hex(), out.Contract)
	assert.Equal(t, "3", out.RaffleNum)
	assert.Equal(t, uint64(31337), out.ChainID)
	assert.Equal(t, "success", out.Tx.Status)
	assert.Equal(t, uint64(12), out.Tx.BlockNumber)
	assert.Equal(t, big.NewInt(fixedNow.Unix()-60).String(), out.Raffle.Expiry)
}

func TestRenderPick_Text(t *testing.T) {
	var buf bytes.Buffer
	err := NewRaffleRenderer(&buf, FormatText).RenderPick(&usecase.PickAndMintResult{
		Contract:  contract,
		RaffleNum: big.NewInt(3),
		Tx:        &domain.TxReceipt{Hash: common.HexToHash("0x02"), From: alice, Status: 1},
		Winners:   []common.Address{bob},
		NFTImage:  "ipfs://token",
		Warnings:  []string{"journal: disk full"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Picked winners for raffle #3")
	assert.Contains(t, out, " 1. "+bob.Hex())
	assert.Contains(t, out, "NFT image:")
	assert.Contains(t, out, "journal: disk full")
}

func TestRenderImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRaffleRenderer(&buf, FormatText).RenderImage(&usecase.GetNFTImageResult{
		RaffleNum: big.NewInt(3),
		Image:     "ipfs://token",
	}))
	assert.Equal(t, "ipfs://token\n", buf.String())
}

func TestRenderList(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRaffleRenderer(&buf, FormatText)
		r.now = func() time.Time { return fixedNow }
		require.NoError(t, r.RenderList(&usecase.ListRafflesResult{
			Raffles: []*domain.Raffle{sampleRaffle()},
			Total:   big.NewInt(3),
		}))

		out := buf.String()
		assert.Contains(t, out, "EVENT")
		assert.Contains(t, out, "1234")
		assert.Contains(t, out, "expired")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRaffleRenderer(&buf, FormatText).RenderList(&usecase.ListRafflesResult{Total: big.NewInt(0)}))
		assert.Equal(t, "No raffles found\n", buf.String())
	})
}

func TestRenderBalance(t *testing.T) {
	result := &usecase.GetBalanceResult{
		Network: "localhost",
		Balance: domain.Balance{Address: alice, Wei: new(big.Int).Mul(big.NewInt(15), big.NewInt(1e17))},
		Source:  "argument",
	}

	var text bytes.Buffer
	require.NoError(t, NewChainRenderer(&text, FormatText).RenderBalance(result))
	assert.Contains(t, text.String(), "1.500000")
	assert.Contains(t, text.String(), "1500000000000000000 wei")

	var js bytes.Buffer
	require.NoError(t, NewChainRenderer(&js, FormatJSON).RenderBalance(result))
	var out map[string]string
	require.NoError(t, json.Unmarshal(js.Bytes(), &out))
	assert.Equal(t, "1500000000000000000", out["wei"])
	assert.Equal(t, alice.Hex(), out["address"])
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	err := NewHistoryRenderer(&buf, FormatText).RenderHistory(&usecase.ListHistoryResult{
		Enabled: true,
		Entries: []*domain.JournalEntry{{
			Kind:      domain.JournalPickAndMint,
			Network:   "localhost",
			Contract:  contract.Hex(),
			RaffleNum: "3",
			TxHash:    common.HexToHash("0x02").Hex(),
			Status:    "success",
			CreatedAt: fixedNow,
		}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "localhost")
	assert.Contains(t, buf.String(), "Pick And Mint")
	assert.Contains(t, buf.String(), "#3")
	assert.Contains(t, buf.String(), "success")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Pick And Mint", Title("pick and mint"))
}
