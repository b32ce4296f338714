package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/poap-raffle/raffle-cli/internal/domain"
)

const revertMarker = "execution reverted"

// wrapCallError sorts an RPC error into the domain error classes
func wrapCallError(method string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, bind.ErrNoCode) {
		return fmt.Errorf("%s: %w", method, domain.ErrNoContractCode)
	}

	if revertErr, ok := asRevert(method, err); ok {
		return revertErr
	}

	if strings.Contains(strings.ToLower(err.Error()), "insufficient funds") {
		return &domain.TransportError{Op: method, Err: fmt.Errorf("%w: %v", domain.ErrInsufficientFunds, err)}
	}

	return &domain.TransportError{Op: method, Err: err}
}

// asRevert extracts a revert from an RPC error. The structured error data is
// preferred; bind flattens gas estimation errors to strings, so the message is
// checked as well.
func asRevert(method string, err error) (*domain.RevertError, bool) {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data := revertData(dataErr.ErrorData()); len(data) > 0 {
			reason, unpackErr := abi.UnpackRevert(data)
			if unpackErr != nil {
				reason = reasonFromMessage(err.Error())
			}
			return &domain.RevertError{Method: method, Reason: reason, Data: data}, true
		}
	}

	if strings.Contains(err.Error(), revertMarker) {
		return &domain.RevertError{Method: method, Reason: reasonFromMessage(err.Error())}, true
	}

	return nil, false
}

func revertData(raw interface{}) []byte {
	switch v := raw.(type) {
	case string:
		data, err := hexutil.Decode(v)
		if err != nil {
			return nil
		}
		return data
	case []byte:
		return v
	default:
		return nil
	}
}

// reasonFromMessage pulls the text after "execution reverted:" out of a node message
func reasonFromMessage(msg string) string {
	idx := strings.Index(msg, revertMarker)
	if idx < 0 {
		return ""
	}
	reason := strings.TrimSpace(msg[idx+len(revertMarker):])
	reason = strings.TrimPrefix(reason, ":")
	return strings.TrimSpace(reason)
}
