package framework

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

const signatureLength = 65

// Vendor issues signing requests through the driver.
type Vendor struct {
	driver driver.Driver
}

func newVendor(d driver.Driver) *Vendor {
	return &Vendor{driver: d}
}

// SignTx starts a transaction signing request.
func (v *Vendor) SignTx() *TxSigningService {
	return &TxSigningService{driver: v.driver}
}

// SignCert starts a certificate signing request.
func (v *Vendor) SignCert() *CertSigningService {
	return &CertSigningService{driver: v.driver}
}

// OwnedAddress reports whether addr is controlled by the driver's signing identity.
func (v *Vendor) OwnedAddress(ctx context.Context, addr string) (bool, error) {
	if err := rules.Test("arg0", rules.Address(addr)); err != nil {
		return false, err
	}
	return v.driver.IsAddressOwned(ctx, strings.ToLower(addr))
}

// TxSigningService accumulates the options of one transaction signing
// request. Configuration errors are kept and returned by Request before the
// driver is called. A service issues at most one request.
type TxSigningService struct {
	driver driver.Driver
	opts   driver.TxOptions
	err    error
	used   atomic.Bool
}

func (s *TxSigningService) fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Err returns the first configuration error, if any.
func (s *TxSigningService) Err() error {
	return s.err
}

// Signer requires the transaction to be signed by addr.
func (s *TxSigningService) Signer(addr string) *TxSigningService {
	if err := rules.Test("arg0", rules.Address(addr)); err != nil {
		s.fail(err)
		return s
	}
	s.opts.Signer = strings.ToLower(addr)
	return s
}

// Gas sets the gas limit instead of letting the wallet estimate it.
func (s *TxSigningService) Gas(gas uint64) *TxSigningService {
	s.opts.Gas = gas
	return s
}

// DependsOn makes the transaction executable only after txid.
func (s *TxSigningService) DependsOn(txid string) *TxSigningService {
	if err := rules.Test("arg0", rules.Bytes32(txid)); err != nil {
		s.fail(err)
		return s
	}
	s.opts.DependsOn = strings.ToLower(txid)
	return s
}

// Link is shown to the user as the context of the request.
func (s *TxSigningService) Link(link string) *TxSigningService {
	s.opts.Link = link
	return s
}

// Comment describes the whole transaction to the user.
func (s *TxSigningService) Comment(text string) *TxSigningService {
	s.opts.Comment = text
	return s
}

// Delegate asks the fee delegation service at rawURL to co-sign.
func (s *TxSigningService) Delegate(rawURL string) *TxSigningService {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		s.fail(rules.BadParameter("arg0: expected url string"))
		return s
	}
	s.opts.Delegator = &driver.Delegator{URL: rawURL}
	return s
}

// DelegateFunc asks fn to co-sign. The signature fn returns must be 65 bytes
// and reaches the driver lowercased.
func (s *TxSigningService) DelegateFunc(fn driver.DelegateFunc) *TxSigningService {
	if fn == nil {
		s.fail(rules.BadParameter("arg0: expected function"))
		return s
	}
	s.opts.Delegator = &driver.Delegator{Sign: checkedDelegate(fn)}
	return s
}

// Prepared registers fn, which the driver invokes when user confirmation begins.
func (s *TxSigningService) Prepared(fn func()) *TxSigningService {
	if fn == nil {
		s.fail(rules.BadParameter("arg0: expected function"))
		return s
	}
	s.opts.OnPrepared = fn
	return s
}

// Request normalizes msg and sends it with the accumulated options. Driver
// failures are returned as Rejected.
func (s *TxSigningService) Request(ctx context.Context, msg []Clause) (*thor.TxResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	normalized, err := normalizeClauses("arg0", msg)
	if err != nil {
		return nil, err
	}
	if !s.used.CompareAndSwap(false, true) {
		return nil, rules.BadParameter("signing service already used")
	}

	resp, err := s.driver.SignTx(ctx, normalized, s.opts)
	if err != nil {
		return nil, rules.Rejected(err)
	}
	return resp, nil
}

// CertSigningService accumulates the options of one certificate signing
// request. A service issues at most one request.
type CertSigningService struct {
	driver driver.Driver
	opts   driver.CertOptions
	err    error
	used   atomic.Bool
}

func (s *CertSigningService) fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Err returns the first configuration error, if any.
func (s *CertSigningService) Err() error {
	return s.err
}

// Signer requires the certificate to be signed by addr.
func (s *CertSigningService) Signer(addr string) *CertSigningService {
	if err := rules.Test("arg0", rules.Address(addr)); err != nil {
		s.fail(err)
		return s
	}
	s.opts.Signer = strings.ToLower(addr)
	return s
}

// Link is shown to the user as the context of the request.
func (s *CertSigningService) Link(link string) *CertSigningService {
	s.opts.Link = link
	return s
}

// Prepared registers fn, which the driver invokes when user confirmation begins.
func (s *CertSigningService) Prepared(fn func()) *CertSigningService {
	if fn == nil {
		s.fail(rules.BadParameter("arg0: expected function"))
		return s
	}
	s.opts.OnPrepared = fn
	return s
}

// Request sends msg with the accumulated options. Driver failures are
// returned as Rejected.
func (s *CertSigningService) Request(ctx context.Context, msg thor.CertMessage) (*thor.CertResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	var vs rules.Violations
	vs.CheckValue("arg0.purpose", msg.Purpose, rules.OneOf(msg.Purpose, thor.PurposeAgreement, thor.PurposeIdentification))
	vs.CheckValue("arg0.payload.type", msg.Payload.Type, rules.OneOf(msg.Payload.Type, "text"))
	if !vs.OK() {
		return nil, rules.BadParameter("%v", vs.Err())
	}
	if !s.used.CompareAndSwap(false, true) {
		return nil, rules.BadParameter("signing service already used")
	}

	resp, err := s.driver.SignCert(ctx, msg, s.opts)
	if err != nil {
		return nil, rules.Rejected(err)
	}
	return resp, nil
}

// checkedDelegate validates and lowercases the signature produced by fn.
func checkedDelegate(fn driver.DelegateFunc) driver.DelegateFunc {
	return func(ctx context.Context, unsigned thor.UnsignedTx) (thor.DelegationResult, error) {
		res, err := fn(ctx, unsigned)
		if err != nil {
			return thor.DelegationResult{}, err
		}
		if err := rules.HexBytes(res.Signature, signatureLength); err != nil {
			return thor.DelegationResult{}, rules.Test("delegation.signature", err)
		}
		res.Signature = strings.ToLower(res.Signature)
		return res, nil
	}
}
