package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// RaffleRenderer renders raffle client results
type RaffleRenderer struct {
	out    io.Writer
	format string
	now    func() time.Time
}

// NewRaffleRenderer creates a new raffle renderer
func NewRaffleRenderer(out io.Writer, format string) *RaffleRenderer {
	return &RaffleRenderer{out: out, format: format, now: time.Now}
}

// RenderCreate renders a created raffle
func (r *RaffleRenderer) RenderCreate(result *usecase.CreateRaffleResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"contract":  result.Contract.Hex(),
		"raffleNum": bigString(result.Predicted),
		"chainId":   result.ChainID,
		"tx":        newTxView(result.Tx, result.ExplorerURL),
		"raffle":    newRaffleView(result.Raffle),
		"warnings":  result.Warnings,
	}); ok {
		return err
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created raffle #%s", result.Predicted)))
	fmt.Fprintln(r.out)
	field(r.out, "Contract", formatAddress(result.Contract))
	txFields(r.out, result.Tx)
	link(r.out, result.ExplorerURL)
	if result.Raffle != nil {
		fmt.Fprintln(r.out)
		r.raffleFields(newRaffleView(result.Raffle), bigString(result.Raffle.Expiry))
		if len(result.Raffle.Participants) > 0 {
			field(r.out, "Participants", fmt.Sprintf("%d", len(result.Raffle.Participants)))
		}
	}
	warnings(r.out, result.Warnings)
	return nil
}

// RenderPick renders a resolved raffle
func (r *RaffleRenderer) RenderPick(result *usecase.PickAndMintResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"contract":  result.Contract.Hex(),
		"raffleNum": bigString(result.RaffleNum),
		"chainId":   result.ChainID,
		"tx":        newTxView(result.Tx, result.ExplorerURL),
		"winners":   nonNil(hexList(result.Winners)),
		"nftImage":  result.NFTImage,
		"warnings":  result.Warnings,
	}); ok {
		return err
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Picked winners for raffle #%s", result.RaffleNum)))
	fmt.Fprintln(r.out)
	field(r.out, "Contract", formatAddress(result.Contract))
	txFields(r.out, result.Tx)
	link(r.out, result.ExplorerURL)
	if result.NFTImage != "" {
		field(r.out, "NFT image", result.NFTImage)
	}
	if len(result.Winners) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, sectionStyle.Sprint("Winners"))
		for i, w := range result.Winners {
			fmt.Fprintf(r.out, "  %2d. %s\n", i+1, formatAddress(w))
		}
	}
	warnings(r.out, result.Warnings)
	return nil
}

// RenderRaffle renders a single raffle record
func (r *RaffleRenderer) RenderRaffle(result *usecase.ShowRaffleResult) error {
	view := newRaffleView(result.Raffle)
	if ok, err := structured(r.out, r.format, view); ok {
		return err
	}

	fmt.Fprintln(r.out, sectionStyle.Sprintf("Raffle #%s", view.RaffleNum))
	r.raffleFields(view, view.Expiry)

	state := pendingStyle.Sprint("waiting for winners")
	if result.Raffle.Resolved() {
		state = okStyle.Sprint("resolved")
	} else if !result.Raffle.Expired(r.now()) {
		state = pendingStyle.Sprint("open")
	}
	field(r.out, "State", state)

	if result.ParticipantsVisible {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, sectionStyle.Sprintf("Participants (%d)", len(result.Raffle.Participants)))
		for _, p := range result.Raffle.Participants {
			fmt.Fprintf(r.out, "  %s\n", formatAddress(p))
		}
	}
	if len(result.Raffle.Winners) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, sectionStyle.Sprintf("Winners (%d)", len(result.Raffle.Winners)))
		for _, w := range result.Raffle.Winners {
			fmt.Fprintf(r.out, "  %s\n", formatAddress(w))
		}
	}
	return nil
}

// RenderWinners renders getWinners output, one address per line
func (r *RaffleRenderer) RenderWinners(result *usecase.GetWinnersResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"raffleNum": bigString(result.RaffleNum),
		"winners":   nonNil(hexList(result.Winners)),
	}); ok {
		return err
	}

	if len(result.Winners) == 0 {
		fmt.Fprintf(r.out, "No winners for raffle #%s yet\n", result.RaffleNum)
		return nil
	}
	for _, w := range result.Winners {
		fmt.Fprintln(r.out, w.Hex())
	}
	return nil
}

// RenderImage renders getNFTImage output
func (r *RaffleRenderer) RenderImage(result *usecase.GetNFTImageResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"raffleNum": bigString(result.RaffleNum),
		"nftImage":  result.Image,
	}); ok {
		return err
	}

	if result.Image == "" {
		fmt.Fprintf(r.out, "No NFT image for raffle #%s yet\n", result.RaffleNum)
		return nil
	}
	fmt.Fprintln(r.out, result.Image)
	return nil
}

// RenderInfo renders contract-level values
func (r *RaffleRenderer) RenderInfo(result *usecase.ShowContractInfoResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"network":         result.Network,
		"chainId":         result.ChainID,
		"address":         result.Info.Address.Hex(),
		"name":            result.Info.Name,
		"lastRaffleCount": bigString(result.Info.LastRaffleCount),
		"explorer":        result.ExplorerURL,
	}); ok {
		return err
	}

	fmt.Fprintln(r.out, sectionStyle.Sprint(result.Info.Name))
	field(r.out, "Address", formatAddress(result.Info.Address))
	field(r.out, "Network", fmt.Sprintf("%s (chain %d)", result.Network, result.ChainID))
	field(r.out, "Raffles", numberStyle.Sprint(bigString(result.Info.LastRaffleCount)))
	link(r.out, result.ExplorerURL)
	return nil
}

// RenderList renders raffles as a table
func (r *RaffleRenderer) RenderList(result *usecase.ListRafflesResult) error {
	views := make([]*raffleView, len(result.Raffles))
	for i, raffle := range result.Raffles {
		views[i] = newRaffleView(raffle)
	}
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"lastRaffleCount": bigString(result.Total),
		"raffles":         views,
	}); ok {
		return err
	}

	if len(result.Raffles) == 0 {
		fmt.Fprintln(r.out, "No raffles found")
		return nil
	}

	now := r.now()
	t := newTable(r.out)
	t.AppendHeader(table.Row{"#", "Event", "Winners", "Expiry", "Token URI"})
	for _, raffle := range result.Raffles {
		t.AppendRow(table.Row{
			numberStyle.Sprint(bigString(raffle.RaffleNum)),
			bigString(raffle.EventNum),
			bigString(raffle.WinnersNum),
			formatExpiry(raffle.Expiry, now),
			raffle.TokenURI,
		})
	}
	t.Render()
	return nil
}

func (r *RaffleRenderer) raffleFields(view *raffleView, expiry string) {
	field(r.out, "Event", view.EventNum)
	field(r.out, "Winners", view.WinnersNum)
	if view.ExpiresAt != nil {
		field(r.out, "Expiry", fmt.Sprintf("%s (%s)", formatExpiryTime(*view.ExpiresAt, r.now()), expiry))
	} else {
		field(r.out, "Expiry", expiry)
	}
	if view.TokenURI != "" {
		field(r.out, "Token URI", view.TokenURI)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
