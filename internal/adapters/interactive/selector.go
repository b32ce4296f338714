package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
	run    func(*promptui.Select) (int, error)
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg, run: runSelect}
}

func runSelect(p *promptui.Select) (int, error) {
	index, _, err := p.Run()
	return index, err
}

// SelectRaffle lets the user pick a raffle with fuzzy search
func (s *SelectorAdapter) SelectRaffle(ctx context.Context, raffles []*domain.Raffle, prompt string, confirm bool) (*domain.Raffle, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(raffles) == 0 {
		return nil, fmt.Errorf("no raffles to select from")
	}

	if len(raffles) == 1 && !confirm {
		return raffles[0], nil
	}

	options := formatRaffleOptions(raffles)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, err := s.run(&promptSelect)
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return raffles[index], nil
}

// formatRaffleOptions creates display strings like "#3 event 7 · 2 winners · ipfs://x"
func formatRaffleOptions(raffles []*domain.Raffle) []string {
	options := make([]string, len(raffles))
	for i, r := range raffles {
		num := color.New(color.FgWhite, color.Bold).Sprintf("#%s", r.RaffleNum)
		details := fmt.Sprintf("event %s · %s winners", r.EventNum, r.WinnersNum)
		if r.TokenURI != "" {
			details += " · " + r.TokenURI
		}
		options[i] = fmt.Sprintf("%s %s", num, color.New(color.FgBlue).Sprint(details))
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.RaffleSelector = (*SelectorAdapter)(nil)
