// Package rules implements the value checks applied at the framework boundary
// and the error kinds raised when they fail.
package rules

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gmath "github.com/ethereum/go-ethereum/common/math"
)

// maxSafeInteger is the largest integral float64 accepted as a big integer.
const maxSafeInteger = 1<<53 - 1

var (
	errAddress  = errors.New("expected address")
	errBytes32  = errors.New("expected bytes32")
	errBytes    = errors.New("expected bytes")
	errBigInt   = errors.New("expected non-negative integer")
	errNonEmpty = errors.New("expected non-empty string")
)

// Address checks for a 0x prefixed 20-byte hex value. Case is not checked.
func Address(v string) error {
	if !strings.HasPrefix(v, "0x") || len(v) != 2+2*common.AddressLength || !common.IsHexAddress(v) {
		return errAddress
	}
	return nil
}

// Bytes32 checks for a 0x prefixed 32-byte hex value.
func Bytes32(v string) error {
	if err := HexBytes(v, common.HashLength); err != nil {
		return errBytes32
	}
	return nil
}

// Bytes checks for a 0x prefixed even-length hex value, "0x" included.
func Bytes(v string) error {
	if !strings.HasPrefix(v, "0x") {
		return errBytes
	}
	if _, err := hexutil.Decode(v); err != nil {
		return errBytes
	}
	return nil
}

// HexBytes checks for a 0x prefixed hex value of exactly n bytes.
func HexBytes(v string, n int) error {
	if !strings.HasPrefix(v, "0x") {
		return fmt.Errorf("expected bytes%d", n)
	}
	b, err := hexutil.Decode(v)
	if err != nil || len(b) != n {
		return fmt.Errorf("expected bytes%d", n)
	}
	return nil
}

// BigIntString checks for a decimal or 0x prefixed hex non-negative integer.
func BigIntString(v string) error {
	if v == "" {
		return errBigInt
	}
	n, ok := gmath.ParseBig256(v)
	if !ok || n.Sign() < 0 {
		return errBigInt
	}
	return nil
}

// NonEmpty checks for a non-empty string.
func NonEmpty(v string) error {
	if v == "" {
		return errNonEmpty
	}
	return nil
}

// OneOf checks that v is one of allowed.
func OneOf[T ~string](v T, allowed ...T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + string(a) + "'"
	}
	return fmt.Errorf("expected %s", strings.Join(quoted, " or "))
}

// BigInt accepts the conventional representations of a non-negative integer
// and returns it as *big.Int: decimal or hex strings, Go integer types,
// integral float64 values up to 2^53-1, *big.Int and big.Int.
func BigInt(v any) (*big.Int, error) {
	switch value := v.(type) {
	case string:
		if err := BigIntString(value); err != nil {
			return nil, err
		}
		n, _ := gmath.ParseBig256(value)
		return n, nil
	case int:
		return nonNegative(int64(value))
	case int8:
		return nonNegative(int64(value))
	case int16:
		return nonNegative(int64(value))
	case int32:
		return nonNegative(int64(value))
	case int64:
		return nonNegative(value)
	case uint:
		return new(big.Int).SetUint64(uint64(value)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(value)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(value)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(value)), nil
	case uintptr:
		return new(big.Int).SetUint64(uint64(value)), nil
	case uint64:
		return new(big.Int).SetUint64(value), nil
	case float64:
		if value < 0 || value > maxSafeInteger || value != math.Trunc(value) {
			return nil, errBigInt
		}
		return big.NewInt(int64(value)), nil
	case *big.Int:
		if value == nil || value.Sign() < 0 || value.BitLen() > 256 {
			return nil, errBigInt
		}
		return new(big.Int).Set(value), nil
	case big.Int:
		return BigInt(&value)
	default:
		return nil, errBigInt
	}
}

// Decimal normalizes a big integer representation to a canonical decimal string.
func Decimal(v any) (string, error) {
	n, err := BigInt(v)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func nonNegative(v int64) (*big.Int, error) {
	if v < 0 {
		return nil, errBigInt
	}
	return big.NewInt(v), nil
}

// Test runs check and converts a failure into a BadParameter error for path.
func Test(path string, err error) error {
	if err == nil {
		return nil
	}
	return BadParameter("%s: %v", path, err)
}

// Ensure returns a BadParameter error with msg when cond is false.
func Ensure(cond bool, msg string) error {
	if cond {
		return nil
	}
	return BadParameter("%s", msg)
}
