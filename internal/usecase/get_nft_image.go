package usecase

import (
	"context"
	"math/big"
)

// GetNFTImageParams contains parameters for reading a raffle's NFT image
type GetNFTImageParams struct {
	RaffleNum string
}

// GetNFTImageResult contains the minted image URI
type GetNFTImageResult struct {
	RaffleNum *big.Int
	Image     string
}

// GetNFTImage is a use case for reading getNFTImage(n)
type GetNFTImage struct {
	contract RaffleContract
}

// NewGetNFTImage creates a new GetNFTImage use case
func NewGetNFTImage(contract RaffleContract) *GetNFTImage {
	return &GetNFTImage{contract: contract}
}

// Run executes the use case
func (uc *GetNFTImage) Run(ctx context.Context, params GetNFTImageParams) (*GetNFTImageResult, error) {
	raffleNum, err := parseRaffleNum(params.RaffleNum)
	if err != nil {
		return nil, err
	}

	image, err := uc.contract.NFTImage(ctx, raffleNum)
	if err != nil {
		return nil, err
	}

	return &GetNFTImageResult{RaffleNum: raffleNum, Image: image}, nil
}
