package signature

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_Format(t *testing.T) {
	sig := Sign(Request{"score": json.Number("100")})
	assert.Equal(t, "294e0ab703e9bdd8adf9840803fde973", sig)
	assert.Len(t, sig, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", sig)
}

func TestVerifySignature_RoundTrip(t *testing.T) {
	payloads := []Request{
		{},
		{"appId": "123", "playerId": "456"},
		{"token": "t", "score": json.Number("0"), "level": json.Number("12")},
		{"a": true, "b": false, "c": 3.25},
		{"ver": "1.0", "timestamp": json.Number("1700000000000")},
	}

	for _, p := range payloads {
		signed := SignRequest(p)
		assert.True(t, VerifySignature(signed), "%v", p)
		_, hadSign := p["sign"]
		assert.False(t, hadSign, "SignRequest must not mutate its input")
	}
}

func TestVerifySignature_TamperDetection(t *testing.T) {
	signed := SignRequest(Request{"appId": "123", "playerId": "456", "score": json.Number("10")})

	t.Run("mutated field", func(t *testing.T) {
		r := signed.Clone()
		r["score"] = json.Number("11")
		assert.False(t, VerifySignature(r))
	})

	t.Run("added field", func(t *testing.T) {
		r := signed.Clone()
		r["extra"] = "1"
		assert.False(t, VerifySignature(r))
	})

	t.Run("removed field", func(t *testing.T) {
		r := signed.Clone()
		delete(r, "playerId")
		assert.False(t, VerifySignature(r))
	})

	t.Run("swapped sign", func(t *testing.T) {
		r := signed.Clone()
		r["sign"] = Sign(Request{"appId": "999"})
		assert.False(t, VerifySignature(r))
	})

	t.Run("uppercase sign", func(t *testing.T) {
		r := signed.Clone()
		r["sign"] = "2042EB87F638E871BE764E436FAD871D"
		assert.False(t, VerifySignature(r))
	})

	t.Run("ver change is not covered", func(t *testing.T) {
		r := signed.Clone()
		r["ver"] = "9.9"
		assert.True(t, VerifySignature(r))
	})
}

func TestVerifySignature_ZeroFieldNotCovered(t *testing.T) {
	// Known sharp edge: a zero field can be blanked without breaking the signature.
	signed := SignRequest(Request{"playerId": "p1", "score": json.Number("0")})
	r := signed.Clone()
	r["score"] = ""
	assert.True(t, VerifySignature(r))
}

func TestVerifySignature_MissingOrWrongType(t *testing.T) {
	assert.False(t, VerifySignature(Request{"a": "1"}))
	assert.False(t, VerifySignature(Request{"a": "1", "sign": ""}))
	assert.False(t, VerifySignature(Request{"sign": json.Number("1")}))
	assert.False(t, VerifySignature(nil))
}
