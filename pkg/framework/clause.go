package framework

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// Clause is a clause as supplied by an application.
//
// To is nil for contract creation. Value may be a decimal or 0x hex string,
// any Go integer type, an integral float64, *big.Int or big.Int. Data
// defaults to "0x". Comment and ABI are only used by signing requests.
type Clause struct {
	To      *string
	Value   any
	Data    string
	Comment string
	ABI     json.RawMessage
}

// ClauseOf turns a normalized clause back into application form.
func ClauseOf(c thor.TxClause) Clause {
	return Clause{
		To:      c.To,
		Value:   c.Value,
		Data:    c.Data,
		Comment: c.Comment,
		ABI:     c.ABI,
	}
}

// normalizeClause validates c and returns its canonical wire form:
// lowercase to and data, decimal value, empty data as "0x".
func normalizeClause(c Clause) (thor.TxClause, rules.Violations) {
	var (
		vs  rules.Violations
		out thor.TxClause
	)

	if c.To != nil {
		if err := rules.Address(*c.To); err != nil {
			vs.CheckValue("to", *c.To, err)
		} else {
			to := strings.ToLower(*c.To)
			out.To = &to
		}
	}

	value, err := rules.Decimal(c.Value)
	vs.CheckValue("value", c.Value, err)
	out.Value = value

	out.Data = "0x"
	if c.Data != "" {
		if err := rules.Bytes(c.Data); err != nil {
			vs.CheckValue("data", c.Data, err)
		} else {
			out.Data = strings.ToLower(c.Data)
		}
	}

	out.Comment = c.Comment
	if len(c.ABI) > 0 {
		vs.Check("abi", functionABI(c.ABI))
		out.ABI = c.ABI
	}
	return out, vs
}

// normalizeClauses checks a non-empty clause list.
func normalizeClauses(path string, clauses []Clause) (thor.TxMessage, error) {
	if len(clauses) == 0 {
		return nil, rules.BadParameter("%s: expected non-empty clause list", path)
	}
	var vs rules.Violations
	msg := make(thor.TxMessage, len(clauses))
	for i, c := range clauses {
		nc, cvs := normalizeClause(c)
		vs.Nest(indexPath(path, i), cvs)
		msg[i] = nc
	}
	if !vs.OK() {
		return nil, rules.BadParameter("%v", vs.Err())
	}
	return msg, nil
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// functionABI checks that raw is the JSON descriptor of exactly one function.
func functionABI(raw json.RawMessage) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("expected object")
	}
	parsed, err := abi.JSON(strings.NewReader("[" + string(raw) + "]"))
	if err != nil {
		return fmt.Errorf("expected valid ABI (%v)", err)
	}
	if len(parsed.Methods) != 1 {
		return fmt.Errorf("expected valid ABI (not a function)")
	}
	return nil
}
