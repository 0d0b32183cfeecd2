package gateway

import (
	"crypto/sha512"
	"encoding/hex"
)

// VerifySignature checks that a notification was signed by the gateway.
// The gateway signs sha512(order_id + status_code + gross_amount + server_key)
// and sends the lowercase hex digest in signature_key. The comparison is exact;
// replay protection is handled by idempotency at the persistence layer, not here.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, provided string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == provided
}
