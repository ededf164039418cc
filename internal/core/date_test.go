package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.String())
	assert.False(t, d.IsZero())
	assert.True(t, d.Equal(NewDate(2024, time.January, 1)))
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"01/01/2024", "2024-1-1", "2024-01-01T00:00:00Z", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2028, time.January, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2028-01-01"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))
}

func TestDateJSONZero(t *testing.T) {
	var d Date
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
	assert.Equal(t, "", d.String())
}

func TestDateJSONUnmarshalNullAndEmpty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())

	d = NewDate(2024, time.June, 15)
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}
