package thor

// CertPurpose is the intent of a certificate.
type CertPurpose string

const (
	PurposeAgreement      CertPurpose = "agreement"
	PurposeIdentification CertPurpose = "identification"
)

// CertPayload is the content the user is asked to sign.
type CertPayload struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// CertMessage is a certificate signing request.
type CertMessage struct {
	Purpose CertPurpose `json:"purpose"`
	Payload CertPayload `json:"payload"`
}

// TxResponse identifies a signed and sent transaction.
type TxResponse struct {
	TxID   string `json:"txid"`
	Signer string `json:"signer"`
}

// CertAnnex is the signing context attached to a certificate.
type CertAnnex struct {
	Domain    string `json:"domain"`
	Timestamp uint64 `json:"timestamp"`
	Signer    string `json:"signer"`
}

// CertResponse is a signed certificate.
type CertResponse struct {
	Annex     CertAnnex `json:"annex"`
	Signature string    `json:"signature"`
}

// UnsignedTx is handed to a fee delegator for co-signing.
type UnsignedTx struct {
	Raw    string `json:"raw"`
	Origin string `json:"origin"`
}

// DelegationResult is the fee delegator's co-signature.
type DelegationResult struct {
	Signature string `json:"signature"`
}
