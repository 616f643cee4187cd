package guard

import (
	"fmt"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

const (
	blockRefLength  = 8
	signatureLength = 65
)

func optional(check func(string) error) func(*string) error {
	return func(v *string) error {
		if v == nil {
			return nil
		}
		return check(*v)
	}
}

var (
	nullableAddress = optional(rules.Address)
	nullableBytes32 = optional(rules.Bytes32)
)

func optionalAddress(v string) error {
	if v == "" {
		return nil
	}
	return rules.Address(v)
}

func optionalBytes32(v string) error {
	if v == "" {
		return nil
	}
	return rules.Bytes32(v)
}

func addressOrBytes32(v string) error {
	if rules.Address(v) == nil || rules.Bytes32(v) == nil {
		return nil
	}
	return fmt.Errorf("expected address or bytes32")
}

func headSchema(h thor.Head) (vs rules.Violations) {
	vs.CheckValue("id", h.ID, rules.Bytes32(h.ID))
	vs.CheckValue("parentID", h.ParentID, rules.Bytes32(h.ParentID))
	return vs
}

func blockSchema(b *thor.Block) (vs rules.Violations) {
	if b == nil {
		return nil
	}
	vs.CheckValue("id", b.ID, rules.Bytes32(b.ID))
	vs.CheckValue("parentID", b.ParentID, rules.Bytes32(b.ParentID))
	vs.CheckValue("beneficiary", b.Beneficiary, rules.Address(b.Beneficiary))
	vs.CheckValue("txsRoot", b.TxsRoot, rules.Bytes32(b.TxsRoot))
	vs.CheckValue("stateRoot", b.StateRoot, rules.Bytes32(b.StateRoot))
	vs.CheckValue("receiptsRoot", b.ReceiptsRoot, rules.Bytes32(b.ReceiptsRoot))
	vs.CheckValue("signer", b.Signer, rules.Address(b.Signer))
	for i, id := range b.Transactions {
		vs.CheckValue(fmt.Sprintf("transactions[%d]", i), id, rules.Bytes32(id))
	}
	return vs
}

func clauseSchema(c thor.Clause) (vs rules.Violations) {
	if c.To != nil {
		vs.CheckValue("to", *c.To, rules.Address(*c.To))
	}
	vs.CheckValue("value", c.Value, rules.BigIntString(c.Value))
	vs.CheckValue("data", c.Data, rules.Bytes(c.Data))
	return vs
}

func txMetaSchema(m thor.TxMeta) (vs rules.Violations) {
	vs.CheckValue("blockID", m.BlockID, rules.Bytes32(m.BlockID))
	return vs
}

func transactionSchema(tx *thor.Transaction) (vs rules.Violations) {
	if tx == nil {
		return nil
	}
	vs.CheckValue("id", tx.ID, rules.Bytes32(tx.ID))
	vs.CheckValue("blockRef", tx.BlockRef, rules.HexBytes(tx.BlockRef, blockRefLength))
	for i, c := range tx.Clauses {
		vs.Nest(fmt.Sprintf("clauses[%d]", i), clauseSchema(c))
	}
	vs.CheckValue("origin", tx.Origin, rules.Address(tx.Origin))
	vs.Check("delegator", nullableAddress(tx.Delegator))
	vs.CheckValue("nonce", tx.Nonce, rules.BigIntString(tx.Nonce))
	vs.Check("dependsOn", nullableBytes32(tx.DependsOn))
	if tx.Meta != nil {
		vs.Nest("meta", txMetaSchema(*tx.Meta))
	}
	return vs
}

func eventSchema(e thor.VMEvent) (vs rules.Violations) {
	vs.CheckValue("address", e.Address, rules.Address(e.Address))
	for i, topic := range e.Topics {
		vs.CheckValue(fmt.Sprintf("topics[%d]", i), topic, rules.Bytes32(topic))
	}
	vs.CheckValue("data", e.Data, rules.Bytes(e.Data))
	return vs
}

func transferSchema(t thor.Transfer) (vs rules.Violations) {
	vs.CheckValue("sender", t.Sender, rules.Address(t.Sender))
	vs.CheckValue("recipient", t.Recipient, rules.Address(t.Recipient))
	vs.CheckValue("amount", t.Amount, rules.BigIntString(t.Amount))
	return vs
}

func effectsSchema(contractAddress *string, events []thor.VMEvent, transfers []thor.Transfer) (vs rules.Violations) {
	vs.Check("contractAddress", nullableAddress(contractAddress))
	for i, e := range events {
		vs.Nest(fmt.Sprintf("events[%d]", i), eventSchema(e))
	}
	for i, t := range transfers {
		vs.Nest(fmt.Sprintf("transfers[%d]", i), transferSchema(t))
	}
	return vs
}

func receiptSchema(r *thor.Receipt) (vs rules.Violations) {
	if r == nil {
		return nil
	}
	vs.CheckValue("gasPayer", r.GasPayer, rules.Address(r.GasPayer))
	vs.CheckValue("paid", r.Paid, rules.BigIntString(r.Paid))
	vs.CheckValue("reward", r.Reward, rules.BigIntString(r.Reward))
	for i, o := range r.Outputs {
		vs.Nest(fmt.Sprintf("outputs[%d]", i), effectsSchema(o.ContractAddress, o.Events, o.Transfers))
	}
	vs.CheckValue("meta.blockID", r.Meta.BlockID, rules.Bytes32(r.Meta.BlockID))
	vs.CheckValue("meta.txID", r.Meta.TxID, rules.Bytes32(r.Meta.TxID))
	vs.CheckValue("meta.txOrigin", r.Meta.TxOrigin, rules.Address(r.Meta.TxOrigin))
	return vs
}

func accountSchema(a *thor.Account) (vs rules.Violations) {
	if a == nil {
		return nil
	}
	vs.CheckValue("balance", a.Balance, rules.BigIntString(a.Balance))
	vs.CheckValue("energy", a.Energy, rules.BigIntString(a.Energy))
	return vs
}

func codeSchema(c *thor.Code) (vs rules.Violations) {
	if c == nil {
		return nil
	}
	vs.CheckValue("code", c.Code, rules.Bytes(c.Code))
	return vs
}

func storageSchema(s *thor.Storage) (vs rules.Violations) {
	if s == nil {
		return nil
	}
	vs.CheckValue("value", s.Value, rules.Bytes32(s.Value))
	return vs
}

func vmOutputSchema(o thor.VMOutput) (vs rules.Violations) {
	vs = append(vs, effectsSchema(o.ContractAddress, o.Events, o.Transfers)...)
	vs.CheckValue("data", o.Data, rules.Bytes(o.Data))
	return vs
}

func logMetaSchema(m thor.LogMeta) (vs rules.Violations) {
	vs.CheckValue("blockID", m.BlockID, rules.Bytes32(m.BlockID))
	vs.CheckValue("txID", m.TxID, rules.Bytes32(m.TxID))
	vs.CheckValue("txOrigin", m.TxOrigin, rules.Address(m.TxOrigin))
	return vs
}

func filterRangeSchema(r thor.FilterRange) (vs rules.Violations) {
	vs.CheckValue("unit", r.Unit, rules.OneOf(r.Unit, thor.UnitBlock, thor.UnitTime))
	if r.From > r.To {
		vs.Check("from", fmt.Errorf("expected from <= to, got %d > %d", r.From, r.To))
	}
	return vs
}

func explainArgSchema(arg driver.ExplainArg) (vs rules.Violations) {
	for i, c := range arg.Clauses {
		vs.Nest(fmt.Sprintf("clauses[%d]", i), clauseSchema(c))
	}
	vs.CheckValue("caller", arg.Caller, optionalAddress(arg.Caller))
	if arg.GasPrice != "" {
		vs.CheckValue("gasPrice", arg.GasPrice, rules.BigIntString(arg.GasPrice))
	}
	return vs
}

func eventCriteriaSchema(c thor.EventCriteria) (vs rules.Violations) {
	vs.Check("address", nullableAddress(c.Address))
	for i, topic := range []*string{c.Topic0, c.Topic1, c.Topic2, c.Topic3, c.Topic4} {
		vs.Check(fmt.Sprintf("topic%d", i), nullableBytes32(topic))
	}
	return vs
}

func transferCriteriaSchema(c thor.TransferCriteria) (vs rules.Violations) {
	vs.Check("txOrigin", nullableAddress(c.TxOrigin))
	vs.Check("sender", nullableAddress(c.Sender))
	vs.Check("recipient", nullableAddress(c.Recipient))
	return vs
}

func txMessageSchema(msg thor.TxMessage) (vs rules.Violations) {
	if len(msg) == 0 {
		vs.Check("", fmt.Errorf("expected non-empty clauses"))
	}
	for i, c := range msg {
		vs.Nest(fmt.Sprintf("[%d]", i), clauseSchema(c.Clause))
	}
	return vs
}

func txOptionsSchema(o driver.TxOptions) (vs rules.Violations) {
	vs.CheckValue("signer", o.Signer, optionalAddress(o.Signer))
	vs.CheckValue("dependsOn", o.DependsOn, optionalBytes32(o.DependsOn))
	if o.Delegator != nil && (o.Delegator.URL == "") == (o.Delegator.Sign == nil) {
		vs.Check("delegator", fmt.Errorf("expected exactly one of url or callback"))
	}
	return vs
}

func certMessageSchema(msg thor.CertMessage) (vs rules.Violations) {
	vs.CheckValue("purpose", msg.Purpose, rules.OneOf(msg.Purpose, thor.PurposeAgreement, thor.PurposeIdentification))
	vs.CheckValue("payload.type", msg.Payload.Type, rules.OneOf(msg.Payload.Type, "text"))
	return vs
}

func txResponseSchema(r *thor.TxResponse) (vs rules.Violations) {
	if r == nil {
		vs.Check("", fmt.Errorf("expected response, got nil"))
		return vs
	}
	vs.CheckValue("txid", r.TxID, rules.Bytes32(r.TxID))
	vs.CheckValue("signer", r.Signer, rules.Address(r.Signer))
	return vs
}

func certResponseSchema(r *thor.CertResponse) (vs rules.Violations) {
	if r == nil {
		vs.Check("", fmt.Errorf("expected response, got nil"))
		return vs
	}
	vs.CheckValue("annex.domain", r.Annex.Domain, rules.NonEmpty(r.Annex.Domain))
	vs.CheckValue("annex.signer", r.Annex.Signer, rules.Address(r.Annex.Signer))
	vs.CheckValue("signature", r.Signature, rules.HexBytes(r.Signature, signatureLength))
	return vs
}
