package form

import (
	"fmt"
	"strings"
)

// Coordinates is a map pin.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BranchRecord is one extra location of a business as edited in the form.
// Branches carry no uniqueness constraint.
type BranchRecord struct {
	Title       string
	Address     string
	Coordinates Coordinates
}

// NewBranchRecord is the default record appended by "add branch". The pin
// starts at 0,0 so the map widget always has something to render.
func NewBranchRecord() BranchRecord {
	return BranchRecord{Coordinates: Coordinates{Lat: 0, Lng: 0}}
}

// NewBranches returns a branch editor seeded with existing branches.
func NewBranches(seed ...BranchRecord) NestedArray[BranchRecord] {
	return NewNestedArray(NewBranchRecord, seed...)
}

var (
	BranchTitle       Lens[BranchRecord, string]      = func(b *BranchRecord) *string { return &b.Title }
	BranchAddress     Lens[BranchRecord, string]      = func(b *BranchRecord) *string { return &b.Address }
	BranchCoordinates Lens[BranchRecord, Coordinates] = func(b *BranchRecord) *Coordinates { return &b.Coordinates }
)

// ValidateBranches checks every branch has a title and an address.
func ValidateBranches(branches NestedArray[BranchRecord]) ValidationErrors {
	errs := ValidationErrors{}
	for i, b := range branches.Values() {
		if strings.TrimSpace(b.Title) == "" {
			errs.Add(fmt.Sprintf("branches[%d].title", i), "branch title is required")
		}
		if strings.TrimSpace(b.Address) == "" {
			errs.Add(fmt.Sprintf("branches[%d].address", i), "branch address is required")
		}
	}
	return errs
}
