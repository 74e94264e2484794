package domain

import (
	"sort"
	"time"
)

// HistoryGroup holds the audit entries that share a creation second.
type HistoryGroup struct {
	At      time.Time    `json:"at"`
	Entries []AuditEntry `json:"entries"`
}

// GroupBySecond buckets trail by CreatedAt truncated to whole seconds. Groups
// are ordered by time, entries keep their trail order.
func GroupBySecond(trail []AuditEntry) []HistoryGroup {
	index := make(map[time.Time]int)
	var groups []HistoryGroup
	for _, e := range trail {
		at := e.CreatedAt.Truncate(time.Second)
		i, ok := index[at]
		if !ok {
			i = len(groups)
			index[at] = i
			groups = append(groups, HistoryGroup{At: at})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].At.Before(groups[j].At)
	})
	return groups
}
