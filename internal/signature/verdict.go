package signature

import (
	apperrors "game-admin/internal/common/errors"
)

// Verdict is the outcome of ValidateRequest. Its numeric values are the codes
// reported to clients as the sub-reason of a 4001 parameter error.
type Verdict int

const (
	Ok               Verdict = 0
	MissingPayload   Verdict = 1
	MissingToken     Verdict = 2
	InvalidTimestamp Verdict = 3
	InvalidSignature Verdict = 4
)

// OK reports whether the request passed validation
func (v Verdict) OK() bool {
	return v == Ok
}

// Code returns the numeric verdict code
func (v Verdict) Code() int {
	return int(v)
}

// Reason returns the machine readable reason sent to clients
func (v Verdict) Reason() string {
	switch v {
	case Ok:
		return "ok"
	case MissingPayload:
		return "missing_payload"
	case MissingToken:
		return "missing_token"
	case InvalidTimestamp:
		return "invalid_timestamp"
	case InvalidSignature:
		return "invalid_signature"
	default:
		return "unknown"
	}
}

func (v Verdict) String() string {
	return v.Reason()
}

// Err converts a failed verdict into a parameter error. It returns nil for Ok.
func (v Verdict) Err() error {
	if v.OK() {
		return nil
	}
	return apperrors.ParamError(v.Reason()).WithContext("verdict", v.Code())
}
