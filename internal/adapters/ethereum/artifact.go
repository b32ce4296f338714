package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/poap-raffle/raffle-cli/internal/domain"
)

// artifactFile covers both Hardhat ("bytecode": "0x..") and Foundry
// ("bytecode": {"object": "0x.."}) build outputs
type artifactFile struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

type foundryBytecode struct {
	Object string `json:"object"`
}

// ArtifactLoader reads compiled contract artifacts from disk
type ArtifactLoader struct{}

// NewArtifactLoader creates a new artifact loader
func NewArtifactLoader() *ArtifactLoader {
	return &ArtifactLoader{}
}

// Load reads and parses an artifact file
func (l *ArtifactLoader) Load(ctx context.Context, path string) (*domain.Artifact, error) {
	if path == "" {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: fmt.Errorf("%w: no artifact path configured", domain.ErrArtifactNotFound)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: fmt.Errorf("%w: %v", domain.ErrArtifactNotFound, err)}
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}
	if len(file.ABI) == 0 {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: fmt.Errorf("%s has no abi", path)}
	}

	parsed, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: fmt.Errorf("failed to parse abi in %s: %w", path, err)}
	}

	bytecode, err := decodeBytecode(file.Bytecode)
	if err != nil {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: fmt.Errorf("bad bytecode in %s: %w", path, err)}
	}

	name := file.ContractName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &domain.Artifact{
		Name:     name,
		Path:     path,
		ABI:      parsed,
		Bytecode: bytecode,
	}, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		var obj foundryBytecode
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		hex = obj.Object
	}

	hex = strings.TrimSpace(hex)
	if hex == "" || hex == "0x" {
		return nil, nil
	}
	if !strings.HasPrefix(hex, "0x") {
		hex = "0x" + hex
	}
	if strings.Contains(hex, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library placeholders")
	}
	return hexutil.Decode(hex)
}
