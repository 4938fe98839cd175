package ranking

import (
	"sort"
	"time"

	"github.com/aaronwald/adrank/internal/types"
)

// Entry is one ranked ad: resolved timestamps plus the derived active
// duration. Entries are built once and not mutated afterwards.
type Entry struct {
	ArchiveID       string
	PageName        string
	Start           time.Time
	End             time.Time
	DurationSeconds float64
}

// DurationDays returns the active duration in days.
func (e Entry) DurationDays() float64 {
	return e.DurationSeconds / 86400
}

// BuildRanking derives an entry per ad and sorts by duration descending.
// Ads are skipped, not errored, when the start cannot be resolved, the end
// cannot be resolved (and the ad is not active), or the duration is negative.
// now supplies the end time for active ads with no resolvable end; it is an
// explicit argument so the computation stays deterministic under test.
func BuildRanking(ads []types.AdRecord, now time.Time) []Entry {
	var entries []Entry
	for _, ad := range ads {
		epoch, ok := ad.StartEpoch()
		start, resolved := ResolveTimestamp(epoch, ok, ad.StartDateString())
		if !resolved {
			continue
		}

		end, resolved := endTime(ad, now)
		if !resolved {
			continue
		}

		duration := end.Sub(start).Seconds()
		if duration < 0 {
			continue
		}

		entries = append(entries, Entry{
			ArchiveID:       ad.ArchiveID(),
			PageName:        ad.PageName(),
			Start:           start,
			End:             end,
			DurationSeconds: duration,
		})
	}

	// Stable sort keeps input order among equal durations.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DurationSeconds > entries[j].DurationSeconds
	})

	return entries
}

// endTime resolves an ad's end timestamp, falling back to now for ads still
// flagged active.
func endTime(ad types.AdRecord, now time.Time) (time.Time, bool) {
	epoch, ok := ad.EndEpoch()
	end, resolved := ResolveTimestamp(epoch, ok, ad.EndDateString())
	if !resolved && ad.IsActive() {
		return now.UTC(), true
	}
	return end, resolved
}
