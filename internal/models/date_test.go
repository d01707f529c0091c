package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var got struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-04T10:30:00Z"}`), &got))
	assert.Equal(t, "2024-03-04", got.Date.String())

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-04"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"04/03/2024"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"date":20240304}`), &got))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-31")))
	assert.Equal(t, "2023-12-31", d.String())

	assert.Error(t, d.Scan(42))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", v)
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", first.String())
	assert.Equal(t, "2024-02-29", last.String())

	first, last = MonthRange(2023, time.December)
	assert.Equal(t, "2023-12-01", first.String())
	assert.Equal(t, "2023-12-31", last.String())
}
