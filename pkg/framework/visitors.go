package framework

import (
	"context"
	"strings"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// AccountVisitor reads account state at the current head.
// Lookups return nil when the driver found nothing.
type AccountVisitor struct {
	driver  driver.Driver
	head    func() thor.Head
	address string
}

// Address returns the lowercased account address.
func (v *AccountVisitor) Address() string {
	return v.address
}

func (v *AccountVisitor) Get(ctx context.Context) (*thor.Account, error) {
	return v.driver.GetAccount(ctx, v.address, v.head().ID)
}

func (v *AccountVisitor) GetCode(ctx context.Context) (*thor.Code, error) {
	return v.driver.GetCode(ctx, v.address, v.head().ID)
}

// GetStorage reads the 32-byte storage slot key.
func (v *AccountVisitor) GetStorage(ctx context.Context, key string) (*thor.Storage, error) {
	if err := rules.Test("arg0", rules.Bytes32(key)); err != nil {
		return nil, err
	}
	return v.driver.GetStorage(ctx, v.address, strings.ToLower(key), v.head().ID)
}

// BlockVisitor reads one block.
type BlockVisitor struct {
	driver   driver.Driver
	revision thor.Revision
}

func (v *BlockVisitor) Revision() thor.Revision {
	return v.revision
}

func (v *BlockVisitor) Get(ctx context.Context) (*thor.Block, error) {
	return v.driver.GetBlock(ctx, v.revision)
}

// TxVisitor reads one transaction and its receipt.
type TxVisitor struct {
	driver       driver.Driver
	id           string
	allowPending bool
}

func (v *TxVisitor) ID() string {
	return v.id
}

// AllowPending lets Get return a transaction still in the pool.
func (v *TxVisitor) AllowPending() *TxVisitor {
	v.allowPending = true
	return v
}

func (v *TxVisitor) Get(ctx context.Context) (*thor.Transaction, error) {
	return v.driver.GetTransaction(ctx, v.id, v.allowPending)
}

func (v *TxVisitor) GetReceipt(ctx context.Context) (*thor.Receipt, error) {
	return v.driver.GetReceipt(ctx, v.id)
}
