// ABOUTME: Tests for raw-lead decoding
// ABOUTME: Covers the three reference shapes and scalar-or-list mobile fields

package lead

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalObject(t *testing.T) {
	var raw RawLead
	err := json.Unmarshal([]byte(`{
		"_id": "lead-1",
		"company": {"_id": "c1", "CompanyName": "Acme"},
		"industry": {"_id": "i1", "name": "Steel"}
	}`), &raw)
	require.NoError(t, err)

	assert.Equal(t, "c1", raw.Company.ID)
	assert.Equal(t, "Acme", raw.Company.Name)
	assert.True(t, raw.Company.IsObject())

	assert.Equal(t, "i1", raw.Industry.ID)
	assert.Equal(t, "Steel", raw.Industry.Name)
}

func TestRef_UnmarshalIDString(t *testing.T) {
	var raw RawLead
	err := json.Unmarshal([]byte(`{"_id": "lead-1", "company": "c1"}`), &raw)
	require.NoError(t, err)

	assert.Equal(t, "c1", raw.Company.ID)
	assert.Empty(t, raw.Company.Name)
	assert.False(t, raw.Company.IsObject())
}

func TestRef_UnmarshalAbsentAndNull(t *testing.T) {
	var raw RawLead
	err := json.Unmarshal([]byte(`{"_id": "lead-1", "company": null}`), &raw)
	require.NoError(t, err)

	assert.Empty(t, raw.Company.ID)
	assert.Empty(t, raw.Industry.ID)
}

func TestRef_MarshalEmitsBareID(t *testing.T) {
	data, err := json.Marshal(Ref{ID: "c1", Name: "Acme"})
	require.NoError(t, err)
	assert.JSONEq(t, `"c1"`, string(data))
}

func TestStringList_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringList
	}{
		{"array", `["9000000001","9000000002"]`, StringList{"9000000001", "9000000002"}},
		{"scalar", `"9000000001"`, StringList{"9000000001"}},
		{"null", `null`, nil},
		{"empty array", `[]`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList_First(t *testing.T) {
	assert.Equal(t, "a", StringList{"a", "b"}.First())
	assert.Empty(t, StringList{}.First())
	assert.Empty(t, StringList(nil).First())
}
