package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"Go", "Redis"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Go","Redis"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v, "nil list is stored as an empty array")
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(`["Go","Redis"]`))
	assert.Equal(t, StringList{"Go", "Redis"}, l)

	require.NoError(t, l.Scan([]byte(`["PHP"]`)))
	assert.Equal(t, StringList{"PHP"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan("null"))
	assert.Equal(t, StringList{}, l, "stored JSON null decodes to an empty list")

	assert.Error(t, l.Scan(42))
}

func TestStringListMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Stack StringList `json:"stack"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stack":[]}`, string(b), "nil list renders as [] on the wire")
}
