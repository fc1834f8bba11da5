package signature

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// Sign returns the lowercase hex MD5 digest of the canonical form of r.
// MD5 is kept for compatibility with deployed clients, not for strength.
func Sign(r Request) string {
	sum := md5.Sum([]byte(Canonicalize(r)))
	return hex.EncodeToString(sum[:])
}

// VerifySignature reports whether r carries a sign field equal to Sign(r).
// A missing or non-string sign never verifies.
func VerifySignature(r Request) bool {
	supplied, ok := r[FieldSign].(string)
	if !ok || supplied == "" {
		return false
	}
	expected := Sign(r)
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) == 1
}

// SignRequest returns a copy of r with its sign field set
func SignRequest(r Request) Request {
	out := r.Clone()
	if out == nil {
		out = Request{}
	}
	out[FieldSign] = Sign(out)
	return out
}
