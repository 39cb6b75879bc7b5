package order

import (
	"errors"
	"testing"

	"github.com/milk9111/battingorder/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFormat(t *testing.T) {
	r := roster.New()
	data, err := Encode(Default(r))
	require.NoError(t, err)
	assert.JSONEq(t, `{"playerIDs":["P01","P02","P03","P04","P05","P06","P07","P08","P09","P10","P11"]}`, string(data))
}

func TestDecode(t *testing.T) {
	r := roster.New()
	reversed := `["P11","P10","P09","P08","P07","P06","P05","P04","P03","P02","P01"]`

	cases := []struct {
		name    string
		data    string
		wantErr error
		first   roster.ID
	}{
		{"object", `{"playerIDs":` + reversed + `}`, nil, "P11"},
		{"bare_array", reversed, nil, "P11"},
		{"padded", "\n  " + reversed + "  \n", nil, "P11"},
		{"short", `{"playerIDs":["P01"]}`, ErrWrongLength, ""},
		{"missing_field", `{"ids":["P01"]}`, ErrWrongLength, ""},
		{"unknown", `["P01","P02","P03","P04","P05","P06","P07","P08","P09","P10","P99"]`, ErrUnknownID, ""},
		{"duplicate", `["P01","P01","P03","P04","P05","P06","P07","P08","P09","P10","P11"]`, ErrDuplicateID, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, err := Decode([]byte(c.data), r)
			if c.wantErr != nil {
				assert.True(t, errors.Is(err, c.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.first, o.At(0))
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	r := roster.New()
	for _, data := range []string{"", "   ", "{", "[1,2,3]", "null", `"P01"`} {
		_, err := Decode([]byte(data), r)
		assert.Error(t, err, "data=%q", data)
	}
}
