package ethereum

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// RaffleABI is the POAPRaffle interface used when no artifact is configured
const RaffleABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[{"name":"_poap","type":"address"}]},
	{"type":"function","name":"createRaffle","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"eventNum","type":"uint256"},
		{"name":"winnersNum","type":"uint256"},
		{"name":"expiry","type":"uint256"},
		{"name":"participants","type":"address[]"},
		{"name":"tokenURI","type":"string"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"pickAndMint","stateMutability":"nonpayable",
	 "inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"raffles","stateMutability":"view",
	 "inputs":[{"name":"","type":"uint256"}],
	 "outputs":[
		{"name":"raffleNum","type":"uint256"},
		{"name":"eventNum","type":"uint256"},
		{"name":"winnersNum","type":"uint256"},
		{"name":"expiry","type":"uint256"},
		{"name":"tokenURI","type":"string"}]},
	{"type":"function","name":"getWinners","stateMutability":"view",
	 "inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getNFTImage","stateMutability":"view",
	 "inputs":[{"name":"raffleNum","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"lastRaffleCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// Method names on the raffle contract
const (
	MethodCreateRaffle    = "createRaffle"
	MethodPickAndMint     = "pickAndMint"
	MethodRaffles         = "raffles"
	MethodGetWinners      = "getWinners"
	MethodGetParticipants = "getParticipants"
	MethodGetNFTImage     = "getNFTImage"
	MethodName            = "name"
	MethodLastRaffleCount = "lastRaffleCount"
)

var (
	builtinOnce sync.Once
	builtinABI  abi.ABI
	builtinErr  error
)

// BuiltinRaffleABI returns the parsed built-in raffle ABI
func BuiltinRaffleABI() (abi.ABI, error) {
	builtinOnce.Do(func() {
		builtinABI, builtinErr = abi.JSON(strings.NewReader(RaffleABI))
	})
	return builtinABI, builtinErr
}

// rafflesFields are the raffles() getter outputs in Raffle field order
var rafflesFields = [...]struct {
	name string
	typ  string
}{
	{"raffleNum", "uint256"},
	{"eventNum", "uint256"},
	{"winnersNum", "uint256"},
	{"expiry", "uint256"},
	{"tokenURI", "string"},
}

// rafflesLayout maps the raffles() outputs onto Raffle fields. Named outputs
// are matched by name, unnamed ones by position.
func rafflesLayout(method abi.Method) ([len(rafflesFields)]int, error) {
	var layout [len(rafflesFields)]int
	if len(method.Outputs) != len(rafflesFields) {
		return layout, fmt.Errorf("%s returns %s, want %d values", MethodRaffles, argTypes(method.Outputs), len(rafflesFields))
	}

	byName := make(map[string]int, len(method.Outputs))
	for i, out := range method.Outputs {
		if out.Name != "" {
			byName[out.Name] = i
		}
	}

	for i, field := range rafflesFields {
		idx, ok := byName[field.name]
		if !ok {
			if len(byName) > 0 {
				return layout, fmt.Errorf("%s has no %s output", MethodRaffles, field.name)
			}
			idx = i
		}
		if got := method.Outputs[idx].Type.String(); got != field.typ {
			return layout, fmt.Errorf("%s output %s is %s, want %s", MethodRaffles, field.name, got, field.typ)
		}
		layout[i] = idx
	}
	return layout, nil
}

func argTypes(args abi.Arguments) string {
	types := make([]string, len(args))
	for i, arg := range args {
		types[i] = arg.Type.String()
	}
	return "(" + strings.Join(types, ",") + ")"
}

// checkMethodShape compares argument and return types with the built-in ABI
func checkMethodShape(want, got abi.Method) error {
	if w, g := argTypes(want.Inputs), argTypes(got.Inputs); w != g {
		return fmt.Errorf("%s takes %s, want %s", want.Name, g, w)
	}
	if w, g := argTypes(want.Outputs), argTypes(got.Outputs); w != g {
		return fmt.Errorf("%s returns %s, want %s", want.Name, g, w)
	}
	return nil
}

// checkRaffleABI makes sure a loaded ABI carries every method the client calls
// with the types it decodes, and returns the raffles() output layout
func checkRaffleABI(parsed *abi.ABI) ([len(rafflesFields)]int, error) {
	var layout [len(rafflesFields)]int
	builtin, err := BuiltinRaffleABI()
	if err != nil {
		return layout, err
	}

	required := []string{
		MethodCreateRaffle,
		MethodPickAndMint,
		MethodGetWinners,
		MethodGetNFTImage,
		MethodName,
		MethodLastRaffleCount,
	}
	var missing, mismatched []string
	for _, name := range required {
		method, ok := parsed.Methods[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if err := checkMethodShape(builtin.Methods[name], method); err != nil {
			mismatched = append(mismatched, err.Error())
		}
	}

	if method, ok := parsed.Methods[MethodGetParticipants]; ok {
		// same shape as getWinners
		want := builtin.Methods[MethodGetWinners]
		want.Name = MethodGetParticipants
		if err := checkMethodShape(want, method); err != nil {
			mismatched = append(mismatched, err.Error())
		}
	}

	if method, ok := parsed.Methods[MethodRaffles]; !ok {
		missing = append(missing, MethodRaffles)
	} else if layout, err = rafflesLayout(method); err != nil {
		mismatched = append(mismatched, err.Error())
	}

	if len(missing) > 0 {
		return layout, fmt.Errorf("abi is missing raffle methods: %s", strings.Join(missing, ", "))
	}
	if len(mismatched) > 0 {
		return layout, fmt.Errorf("abi does not match the raffle interface: %s", strings.Join(mismatched, "; "))
	}
	return layout, nil
}
