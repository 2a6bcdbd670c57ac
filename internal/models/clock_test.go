package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		raw     string
		want    ClockTime
		wantErr bool
	}{
		{raw: "00:00", want: Midnight},
		{raw: "18:30", want: NewClockTime(18, 30)},
		{raw: "23:59:59", want: ClockTime(23*3600 + 59*60 + 59)},
		{raw: " 07:05 ", want: NewClockTime(7, 5)},
		{raw: "24:00", wantErr: true},
		{raw: "7:05", wantErr: true},
		{raw: "12:60", wantErr: true},
		{raw: "noon", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseClockTime(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClockTimeString(t *testing.T) {
	assert.Equal(t, "00:00", Midnight.String())
	assert.Equal(t, "24:00", EndOfDay.String())
	assert.Equal(t, "09:45", NewClockTime(9, 45).String())
	assert.Equal(t, 585, NewClockTime(9, 45).Minutes())
}

func TestClockTimeOf(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 21, 15, 30, 0, time.UTC)
	assert.Equal(t, ClockTime(21*3600+15*60+30), ClockTimeOf(ts))
}

func TestClockTimeValue(t *testing.T) {
	v, err := NewClockTime(18, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "18:05:00", v)

	_, err = EndOfDay.Value()
	assert.Error(t, err)
}

func TestClockTimeScan(t *testing.T) {
	var c ClockTime
	require.NoError(t, c.Scan([]byte("19:30:00")))
	assert.Equal(t, NewClockTime(19, 30), c)

	require.NoError(t, c.Scan("08:00:00.000000"))
	assert.Equal(t, NewClockTime(8, 0), c)

	require.NoError(t, c.Scan(time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewClockTime(22, 0), c)

	assert.Error(t, c.Scan(42))
}

func TestClockTimeJSON(t *testing.T) {
	raw, err := json.Marshal(DaySlot{From: NewClockTime(18, 0).Ptr(), To: Midnight.Ptr()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"18:00","to":"00:00"}`, string(raw))

	var slot DaySlot
	require.NoError(t, json.Unmarshal([]byte(`{"from":"10:00"}`), &slot))
	require.NotNil(t, slot.From)
	assert.Nil(t, slot.To)
	assert.Equal(t, NewClockTime(10, 0), *slot.From)

	assert.Error(t, json.Unmarshal([]byte(`{"from":"25:00"}`), &slot))
}

func TestClockTimeJSONKeepsSeconds(t *testing.T) {
	withSeconds := ClockTime(18*3600 + 30)
	raw, err := json.Marshal(withSeconds)
	require.NoError(t, err)
	assert.Equal(t, `"18:00:30"`, string(raw))

	var decoded ClockTime
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, withSeconds, decoded)
}

func TestSnapshotSameWeek(t *testing.T) {
	a := &AvailabilitySnapshot{}
	b := &AvailabilitySnapshot{}
	var week [DaysPerWeek]DaySlot
	week[Friday] = DaySlot{From: NewClockTime(20, 0).Ptr(), To: Midnight.Ptr()}
	a.SetWeek(week)
	b.SetWeek(week)
	assert.True(t, a.SameWeek(b))

	week[Friday].To = NewClockTime(23, 0).Ptr()
	b.SetWeek(week)
	assert.False(t, a.SameWeek(b))

	var none *AvailabilitySnapshot
	assert.False(t, a.SameWeek(none))
	assert.True(t, none.SameWeek(nil))
}
