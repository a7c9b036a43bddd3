package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "with seconds", input: "09:00:00", wantErr: true},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeString_DropsSecondsAndDate(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 14, 35, 59, 0, time.UTC))

	assert.Equal(t, "14:35", ts.String())
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 35, ts.Minute())
	assert.Equal(t, 14*60+35, ts.TotalMinutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	mustParse := func(s string) TimeString {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err)
		return ts
	}

	t.Run("simple shift", func(t *testing.T) {
		got, err := mustParse("10:00").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, "10:30", got.String())
	})

	t.Run("crosses hour boundary", func(t *testing.T) {
		got, err := mustParse("10:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, "11:15", got.String())
	})

	t.Run("exactly midnight is allowed", func(t *testing.T) {
		// 23:30 + 30 минут = ровно конец суток, услуга успевает закончиться
		got, err := mustParse("23:30").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, 24*60, got.TotalMinutes())
	})

	t.Run("past midnight fails", func(t *testing.T) {
		_, err := mustParse("23:45").AddMinutes(30)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfDayRange)
	})

	t.Run("negative shift below zero fails", func(t *testing.T) {
		_, err := mustParse("00:10").AddMinutes(-20)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfDayRange)
	})

	t.Run("zero value fails", func(t *testing.T) {
		var zero TimeString
		_, err := zero.AddMinutes(30)
		require.Error(t, err)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	earlier, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	later, err := NewTimeStringFromString("18:00")
	require.NoError(t, err)

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsAfter(later))

	// Равные значения не раньше и не позже друг друга
	same, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.False(t, earlier.IsBefore(same))
	assert.False(t, earlier.IsAfter(same))
	assert.True(t, earlier.Equal(same))
}

func TestTimeString_IsZero(t *testing.T) {
	var zero TimeString
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	ts, err := NewTimeStringFromString("00:00")
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
}

func TestTimeString_OnDate(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)

	date := time.Date(2026, 9, 10, 23, 59, 0, 0, time.UTC)
	got := ts.OnDate(date)

	assert.Equal(t, time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:15"))
		assert.Equal(t, "10:15", ts.String())
	})

	t.Run("from string with seconds", func(t *testing.T) {
		// postgres TIME колонки приходят как "HH:MM:SS"
		var ts TimeString
		require.NoError(t, ts.Scan("10:15:00"))
		assert.Equal(t, "10:15", ts.String())
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:45")))
		assert.Equal(t, "08:45", ts.String())
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)))
		assert.Equal(t, "12:05", ts.String())
	})

	t.Run("nil resets to zero value", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:00")
		require.NoError(t, err)
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	ts, err := NewTimeStringFromString("07:05")
	require.NoError(t, err)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05", v)

	var zero TimeString
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
