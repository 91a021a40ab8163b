// Package titles discovers Title.xml documents, extracts their display name
// and rarity classifier, and serializes the result as a JSON array.
package titles

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// Entry is one extracted title. Field order is the JSON key order.
type Entry struct {
	Name     string `json:"name"`
	RareType string `json:"rareType"`
}

// Result contains statistics of an extraction run.
type Result struct {
	InputDir    string
	OutputFile  string
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
	FilesFound  int
	Files       []string // discovered paths, parallel to the extracted entries
	Entries     int
	Written     bool
	Rarities    *orderedmap.OrderedMap[string, int]
}

// RarityTally counts entries per rareType in first-seen order.
func RarityTally(entries []Entry) *orderedmap.OrderedMap[string, int] {
	tally := orderedmap.NewOrderedMap[string, int]()
	for _, e := range entries {
		count, _ := tally.Get(e.RareType)
		tally.Set(e.RareType, count+1)
	}
	return tally
}
