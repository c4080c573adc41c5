package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchAppendRemoveStability(t *testing.T) {
	branches := NewBranches()
	var err error
	for i := 0; i < 3; i++ {
		branches, err = branches.Append()
		require.NoError(t, err)
	}
	branches, err = UpdateAt(branches, 0, BranchTitle, "Vanak")
	require.NoError(t, err)
	branches, err = UpdateAt(branches, 0, BranchAddress, "Vanak Sq.")
	require.NoError(t, err)
	branches, err = UpdateAt(branches, 1, BranchTitle, "Tajrish")
	require.NoError(t, err)
	branches, err = UpdateAt(branches, 2, BranchTitle, "Saadat Abad")
	require.NoError(t, err)
	branches, err = UpdateAt(branches, 2, BranchCoordinates, Coordinates{Lat: 35.78, Lng: 51.37})
	require.NoError(t, err)

	before := branches
	keys := branches.Keys()

	after, err := branches.Remove(1)
	require.NoError(t, err)

	require.Equal(t, 2, after.Len())
	assert.Equal(t, []string{keys[0], keys[2]}, after.Keys())
	assert.Equal(t, BranchRecord{Title: "Vanak", Address: "Vanak Sq."}, after.Values()[0])
	assert.Equal(t, BranchRecord{Title: "Saadat Abad", Coordinates: Coordinates{Lat: 35.78, Lng: 51.37}}, after.Values()[1])

	// the old snapshot is untouched
	assert.Equal(t, 3, before.Len())
	assert.Equal(t, "Tajrish", before.Values()[1].Title)
}

func TestNestedArrayUpdateLeavesSiblings(t *testing.T) {
	arr := NewBranches(BranchRecord{Title: "a"}, BranchRecord{Title: "b"})
	next, err := arr.Update(1, func(b BranchRecord) BranchRecord {
		b.Address = "street"
		return b
	})
	require.NoError(t, err)

	assert.Equal(t, arr.Keys(), next.Keys())
	assert.Equal(t, BranchRecord{Title: "a"}, next.Values()[0])
	assert.Equal(t, "street", next.Values()[1].Address)
	assert.Empty(t, arr.Values()[1].Address)
}

func TestNestedArrayOutOfRange(t *testing.T) {
	arr := NewBranches(BranchRecord{Title: "only"})

	_, err := arr.Remove(1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = arr.Remove(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = UpdateAt(arr, 5, BranchTitle, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, ok := arr.At(3)
	assert.False(t, ok)
}

func TestNestedArrayAppendNeedsDefault(t *testing.T) {
	var arr NestedArray[BranchRecord]
	_, err := arr.Append()
	assert.ErrorIs(t, err, ErrNoDefaultRecord)

	arr = arr.AppendValue(BranchRecord{Title: "x"})
	assert.Equal(t, 1, arr.Len())
}

func TestNewBranchRecordDefaults(t *testing.T) {
	arr, err := NewBranches().Append()
	require.NoError(t, err)
	item, ok := arr.At(0)
	require.True(t, ok)
	assert.NotEmpty(t, item.Key)
	assert.Equal(t, Coordinates{}, item.Value.Coordinates)
}

func TestValidateBranches(t *testing.T) {
	arr := NewBranches(BranchRecord{Title: "a", Address: "x"}, BranchRecord{Title: " "}, BranchRecord{Title: "a", Address: "x"})
	errs := ValidateBranches(arr)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "branches[1].title")
	assert.Contains(t, errs, "branches[1].address")
}

func TestLensGetSet(t *testing.T) {
	s := DefaultProviderSettings()
	next := Set(s, SettingsShowPrices, false)
	assert.False(t, Get(next, SettingsShowPrices))
	assert.True(t, s.ShowPrices)
	assert.Equal(t, "#000000", Get(Set(s, SettingsThemeColor, "#000000"), SettingsThemeColor))
}
