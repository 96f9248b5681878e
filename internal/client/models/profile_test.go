package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_UnmarshalDropsToken(t *testing.T) {
	var p Profile
	err := json.Unmarshal([]byte(`{"wallet":"0xAbC","token":"T","points":12,"nick":"bob"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "0xAbC", p.Wallet)
	assert.NotContains(t, p.Fields, "token")
	assert.NotContains(t, p.Fields, "wallet")
	assert.Equal(t, []string{"nick", "points"}, p.FieldNames())

	var points int
	ok, err := p.Field("points", &points)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, points)
}

func TestProfile_UnmarshalNullWallet(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"wallet":null}`), &p))
	assert.Empty(t, p.Wallet)
}

func TestProfile_UnmarshalBadWallet(t *testing.T) {
	var p Profile
	require.Error(t, json.Unmarshal([]byte(`{"wallet":42}`), &p))
}

func TestProfile_MarshalKeepsFields(t *testing.T) {
	p := Profile{Wallet: "0xabc", Fields: map[string]json.RawMessage{"points": json.RawMessage(`7`)}}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet":"0xabc","points":7}`, string(b))
}

func TestProfile_OwnedBy(t *testing.T) {
	p := &Profile{Wallet: "0xAbCdEf"}

	assert.True(t, p.OwnedBy("0xabcdef"))
	assert.True(t, p.OwnedBy("0XABCDEF"))
	assert.False(t, p.OwnedBy("0x123456"))
	assert.False(t, p.OwnedBy(""))

	var none *Profile
	assert.False(t, none.OwnedBy("0xabcdef"))
}

func TestProfile_CloneIsDeep(t *testing.T) {
	p := &Profile{Wallet: "0xa", Fields: map[string]json.RawMessage{"n": json.RawMessage(`1`)}}
	c := p.Clone()

	c.Fields["n"][0] = '2'
	c.Wallet = "0xb"

	assert.Equal(t, "0xa", p.Wallet)
	assert.Equal(t, json.RawMessage(`1`), p.Fields["n"])

	var none *Profile
	assert.Nil(t, none.Clone())
}
