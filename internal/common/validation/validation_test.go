package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-admin/internal/common/errors"
	"game-admin/internal/signature"
)

type submitParams struct {
	AppID    string   `param:"appId" validate:"required,ident,max=64"`
	PlayerID string   `param:"playerId" validate:"required,ident,max=128"`
	Score    int64    `param:"score" validate:"min=0"`
	Extra    *string  `param:"extra" validate:"omitempty,max=16"`
	Tags     []string `param:"tags"`
	Public   bool     `param:"public"`
	Ignored  string
}

func TestBind(t *testing.T) {
	req := signature.Request{
		"appId":    "game_1",
		"playerId": json.Number("42"),
		"score":    json.Number("1500"),
		"extra":    "gold",
		"tags":     " a, b ,,c",
		"public":   true,
		"Ignored":  "x",
	}

	var p submitParams
	require.NoError(t, Bind(req, &p))

	assert.Equal(t, "game_1", p.AppID)
	assert.Equal(t, "42", p.PlayerID)
	assert.Equal(t, int64(1500), p.Score)
	require.NotNil(t, p.Extra)
	assert.Equal(t, "gold", *p.Extra)
	assert.Equal(t, []string{"a", "b", "c"}, p.Tags)
	assert.True(t, p.Public)
	assert.Empty(t, p.Ignored)
}

func TestBind_StringNumbers(t *testing.T) {
	var p submitParams
	require.NoError(t, Bind(signature.Request{"appId": "g", "playerId": "p", "score": "77"}, &p))
	assert.Equal(t, int64(77), p.Score)
	assert.Nil(t, p.Extra)
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name  string
		req   signature.Request
		field string
	}{
		{"missing app", signature.Request{"playerId": "p"}, "appId"},
		{"bad ident", signature.Request{"appId": "a b", "playerId": "p"}, "appId"},
		{"fractional score", signature.Request{"appId": "a", "playerId": "p", "score": json.Number("1.5")}, "score"},
		{"negative score", signature.Request{"appId": "a", "playerId": "p", "score": json.Number("-1")}, "score"},
		{"long extra", signature.Request{"appId": "a", "playerId": "p", "extra": "0123456789abcdefg"}, "extra"},
		{"bad bool", signature.Request{"appId": "a", "playerId": "p", "public": "maybe"}, "public"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p submitParams
			err := Bind(tt.req, &p)
			require.Error(t, err)
			assert.Equal(t, errors.CodeParamError, errors.APICode(err))
			assert.Equal(t, ReasonInvalidParam, errors.Reason(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestBind_RequiresStructPointer(t *testing.T) {
	var p submitParams
	assert.Error(t, Bind(signature.Request{}, p))
}

func TestCustomRules(t *testing.T) {
	assert.NoError(t, Var("ops_team", "role_name"))
	assert.Error(t, Var("Ops Team", "role_name"))
	assert.NoError(t, Var("admin", "username"))
	assert.Error(t, Var("ab", "username"))
	assert.NoError(t, Var("@every 1h", "cron_expression"))
	assert.Error(t, Var("every hour", "cron_expression"))
	assert.NoError(t, Var("Asia/Shanghai", "timezone"))
	assert.Error(t, Var("Mars/Olympus", "timezone"))
}

func TestFieldErrors(t *testing.T) {
	v := New()
	fes := v.FieldErrors(&submitParams{})
	require.Len(t, fes, 2)
	assert.Equal(t, "appId", fes[0].Field)
	assert.Equal(t, "required", fes[0].Tag)
	assert.Nil(t, v.FieldErrors(&submitParams{AppID: "a", PlayerID: "b"}))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a"}, SplitList(" a ,"))
}
