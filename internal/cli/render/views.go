package render

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
)

// Views are the json/yaml shapes; uint256 values are decimal strings

type txView struct {
	Hash        string `json:"hash" yaml:"hash"`
	From        string `json:"from" yaml:"from"`
	BlockNumber uint64 `json:"blockNumber" yaml:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed" yaml:"gasUsed"`
	Status      string `json:"status" yaml:"status"`
	Explorer    string `json:"explorer,omitempty" yaml:"explorer,omitempty"`
}

func newTxView(r *domain.TxReceipt, explorer string) *txView {
	if r == nil {
		return nil
	}
	status := "failed"
	if r.Succeeded() {
		status = "success"
	}
	return &txView{
		Hash:        r.Hash.Hex(),
		From:        r.From.Hex(),
		BlockNumber: r.BlockNumber,
		GasUsed:     r.GasUsed,
		Status:      status,
		Explorer:    explorer,
	}
}

type raffleView struct {
	RaffleNum    string     `json:"raffleNum" yaml:"raffleNum"`
	EventNum     string     `json:"eventNum" yaml:"eventNum"`
	WinnersNum   string     `json:"winnersNum" yaml:"winnersNum"`
	Expiry       string     `json:"expiry" yaml:"expiry"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	TokenURI     string     `json:"tokenURI" yaml:"tokenURI"`
	Participants []string   `json:"participants,omitempty" yaml:"participants,omitempty"`
	Winners      []string   `json:"winners,omitempty" yaml:"winners,omitempty"`
	NFTImage     string     `json:"nftImage,omitempty" yaml:"nftImage,omitempty"`
}

func newRaffleView(r *domain.Raffle) *raffleView {
	if r == nil {
		return nil
	}
	v := &raffleView{
		RaffleNum:    bigString(r.RaffleNum),
		EventNum:     bigString(r.EventNum),
		WinnersNum:   bigString(r.WinnersNum),
		Expiry:       bigString(r.Expiry),
		TokenURI:     r.TokenURI,
		Participants: hexList(r.Participants),
		Winners:      hexList(r.Winners),
		NFTImage:     r.NFTImage,
	}
	if at, ok := r.ExpiryTime(); ok {
		at = at.UTC()
		v.ExpiresAt = &at
	}
	return v
}

func hexList(addrs []common.Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Hex()
	}
	return out
}
