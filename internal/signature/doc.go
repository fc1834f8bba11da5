// Package signature implements the request signing scheme shared by every RPC
// function of the service and by the game clients that call it.
//
// A request is a flat JSON object. Its canonical form is built by dropping the
// "sign" and "ver" fields and every field whose value is null, the empty string
// or the number zero, sorting the remaining keys in code point order and
// concatenating each key directly followed by the string form of its value.
// The signature is the lowercase hex MD5 of that string.
//
//	{"appId":"123","playerId":"456","data":"789","sign":"...","ver":"1.0"}
//	canonical: appId123data789playerId456
//	sign:      md5("appId123data789playerId456")
//
// Numbers are rendered the way the existing JavaScript clients render them, so
// 1.0 becomes "1" and 1e21 becomes "1e+21".
//
// # Compatibility notes
//
// MD5 and the zero/empty filter are part of the wire contract with deployed
// clients. A field holding 0 or "" is not covered by the signature, so a score
// of 0 can be altered to another falsy value without detection. Changing either
// rule requires shipping new clients at the same time.
//
// The timestamp freshness check is available but disabled by default, since
// clients do not keep their clocks in sync with the server. Timestamps in the
// future always pass it.
//
// # Usage
//
//	auth := signature.NewAuthenticator(signature.DefaultConfig())
//	req, err := signature.ParseRequest(body)
//	if err != nil {
//	    // reject: not a flat JSON object
//	}
//	if v := auth.ValidateRequest(req, false); !v.OK() {
//	    return v.Err()
//	}
//
// All functions are pure and safe for concurrent use.
package signature
