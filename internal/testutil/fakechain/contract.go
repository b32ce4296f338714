package fakechain

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ABI is the raffle interface the fake contract serves, including the
// getParticipants getter some deployments expose
const ABI = `[
	{"type":"constructor","inputs":[{"name":"_poap","type":"address"}]},
	{"type":"function","name":"createRaffle","stateMutability":"nonpayable",
	 "inputs":[{"name":"eventNum","type":"uint256"},{"name":"winnersNum","type":"uint256"},{"name":"expiry","type":"uint256"},{"name":"participants","type":"address[]"},{"name":"tokenURI","type":"string"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"pickAndMint","stateMutability":"nonpayable","inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"raffles","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],
	 "outputs":[{"name":"raffleNum","type":"uint256"},{"name":"eventNum","type":"uint256"},{"name":"winnersNum","type":"uint256"},{"name":"expiry","type":"uint256"},{"name":"tokenURI","type":"string"}]},
	{"type":"function","name":"getWinners","stateMutability":"view","inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getParticipants","stateMutability":"view","inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getNFTImage","stateMutability":"view","inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"lastRaffleCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// ContractName is returned by name()
const ContractName = "POAPRaffle"

var (
	parsedABI = mustParseABI()
	// Error(string) selector
	errorSelector = crypto.Keccak256([]byte("Error(string)"))[:4]
)

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(ABI))
	if err != nil {
		panic(err)
	}
	return parsed
}

// ParsedABI returns the fake contract's ABI
func ParsedABI() abi.ABI {
	return parsedABI
}

// RevertError mimics the JSON-RPC error geth returns for a revert
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return "execution reverted"
	}
	return "execution reverted: " + e.Reason
}

// ErrorCode implements rpc.Error
func (e *RevertError) ErrorCode() int { return 3 }

// ErrorData implements rpc.DataError
func (e *RevertError) ErrorData() interface{} {
	if e.Reason == "" {
		return "0x"
	}
	stringType, _ := abi.NewType("string", "", nil)
	packed, _ := abi.Arguments{{Type: stringType}}.Pack(e.Reason)
	return hexutil.Encode(append(append([]byte{}, errorSelector...), packed...))
}

func revert(format string, args ...interface{}) error {
	return &RevertError{Reason: fmt.Sprintf(format, args...)}
}

type raffle struct {
	num          *big.Int
	eventNum     *big.Int
	winnersNum   *big.Int
	expiry       *big.Int
	participants []common.Address
	tokenURI     string
	winners      []common.Address
	image        string
}

type raffleContract struct {
	owner   common.Address
	poap    common.Address
	last    *big.Int
	raffles map[string]*raffle
}

func newRaffleContract(owner, poap common.Address) *raffleContract {
	return &raffleContract{
		owner:   owner,
		poap:    poap,
		last:    new(big.Int),
		raffles: make(map[string]*raffle),
	}
}

// constructorArg reads the POAP address appended to the creation bytecode
func constructorArg(data []byte) (common.Address, error) {
	if len(data) < 32 {
		return common.Address{}, revert("missing constructor argument")
	}
	poap := common.BytesToAddress(data[len(data)-32:])
	if poap == (common.Address{}) {
		return common.Address{}, revert("POAP address is zero")
	}
	return poap, nil
}

func (rc *raffleContract) execute(from common.Address, data []byte, now time.Time, block uint64, commit bool) ([]byte, error) {
	if len(data) < 4 {
		return nil, &RevertError{}
	}
	method, err := parsedABI.MethodById(data[:4])
	if err != nil {
		return nil, &RevertError{}
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, revert("bad calldata")
	}

	var out []interface{}
	switch method.Name {
	case "createRaffle":
		num, err := rc.createRaffle(from, args, now, commit)
		if err != nil {
			return nil, err
		}
		out = []interface{}{num}
	case "pickAndMint":
		if err := rc.pickAndMint(from, args[0].(*big.Int), now, block, commit); err != nil {
			return nil, err
		}
	case "raffles":
		r := rc.lookup(args[0].(*big.Int))
		if r == nil {
			out = []interface{}{new(big.Int), new(big.Int), new(big.Int), new(big.Int), ""}
		} else {
			out = []interface{}{r.num, r.eventNum, r.winnersNum, r.expiry, r.tokenURI}
		}
	case "getWinners":
		r := rc.lookup(args[0].(*big.Int))
		if r == nil {
			out = []interface{}{[]common.Address{}}
		} else {
			out = []interface{}{append([]common.Address{}, r.winners...)}
		}
	case "getParticipants":
		r := rc.lookup(args[0].(*big.Int))
		if r == nil {
			out = []interface{}{[]common.Address{}}
		} else {
			out = []interface{}{append([]common.Address{}, r.participants...)}
		}
	case "getNFTImage":
		r := rc.lookup(args[0].(*big.Int))
		if r == nil {
			return nil, revert("raffle does not exist")
		}
		out = []interface{}{r.image}
	case "name":
		out = []interface{}{ContractName}
	case "lastRaffleCount":
		out = []interface{}{new(big.Int).Set(rc.last)}
	default:
		return nil, &RevertError{}
	}

	return method.Outputs.Pack(out...)
}

func (rc *raffleContract) lookup(num *big.Int) *raffle {
	return rc.raffles[num.String()]
}

func (rc *raffleContract) createRaffle(from common.Address, args []interface{}, now time.Time, commit bool) (*big.Int, error) {
	if from != rc.owner {
		return nil, revert("Ownable: caller is not the owner")
	}

	eventNum := args[0].(*big.Int)
	winnersNum := args[1].(*big.Int)
	expiry := args[2].(*big.Int)
	participants := args[3].([]common.Address)
	tokenURI := args[4].(string)

	if len(participants) == 0 {
		return nil, revert("no participants")
	}
	seen := make(map[common.Address]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p]; dup {
			return nil, revert("duplicate participant")
		}
		seen[p] = struct{}{}
	}
	if winnersNum.Sign() == 0 || winnersNum.Cmp(big.NewInt(int64(len(participants)))) > 0 {
		return nil, revert("winnersNum exceeds participants")
	}
	if expiry.Cmp(big.NewInt(now.Unix())) <= 0 {
		return nil, revert("expiry must be in the future")
	}

	num := new(big.Int).Add(rc.last, big.NewInt(1))
	if !commit {
		return num, nil
	}

	rc.last = num
	rc.raffles[num.String()] = &raffle{
		num:          num,
		eventNum:     new(big.Int).Set(eventNum),
		winnersNum:   new(big.Int).Set(winnersNum),
		expiry:       new(big.Int).Set(expiry),
		participants: append([]common.Address{}, participants...),
		tokenURI:     tokenURI,
	}
	return num, nil
}

func (rc *raffleContract) pickAndMint(from common.Address, num *big.Int, now time.Time, block uint64, commit bool) error {
	r := rc.lookup(num)
	if r == nil {
		return revert("raffle does not exist")
	}
	if r.expiry.Cmp(big.NewInt(now.Unix())) > 0 {
		return revert("raffle has not expired")
	}
	if len(r.winners) > 0 {
		return revert("winners already picked")
	}
	if !commit {
		return nil
	}

	// Deterministic draw: shuffle with a seed derived from raffle and block
	seed := crypto.Keccak256(num.Bytes(), new(big.Int).SetUint64(block).Bytes())
	rng := rand.New(rand.NewPCG(binary.BigEndian.Uint64(seed[:8]), binary.BigEndian.Uint64(seed[8:16])))

	pool := append([]common.Address{}, r.participants...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	r.winners = pool[:r.winnersNum.Int64()]
	r.image = r.tokenURI
	return nil
}
