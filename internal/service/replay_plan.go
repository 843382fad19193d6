// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/MKhiriev/go-clinic-sync/models"
)

// replayGroup is every ledger entry of one record, collapsed into a single
// cloud write.
type replayGroup struct {
	table    string
	recordID string
	entries  []models.PendingChangeEntry

	// remove is set when the last entry is a DELETE. Earlier entries are
	// superseded by it.
	remove bool
}

func (g replayGroup) first() models.PendingChangeEntry { return g.entries[0] }
func (g replayGroup) last() models.PendingChangeEntry  { return g.entries[len(g.entries)-1] }

func (g replayGroup) entryIDs() []string {
	ids := make([]string, len(g.entries))
	for i, e := range g.entries {
		ids[i] = e.ID
	}
	return ids
}

type recordKey struct {
	table string
	id    string
}

// planReplay groups entries per record and orders the groups: upserts by
// table dependency order then by first write, then deletes in reverse
// dependency order so children go before their parents. entries must be
// in ledger order.
func planReplay(entries []models.PendingChangeEntry, rank map[string]int) []replayGroup {
	index := make(map[recordKey]int)
	var groups []replayGroup

	for _, e := range entries {
		key := recordKey{table: e.TableName, id: e.RecordID}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, replayGroup{table: e.TableName, recordID: e.RecordID})
		}
		groups[i].entries = append(groups[i].entries, e)
	}

	var upserts, deletes []replayGroup
	for _, g := range groups {
		g.remove = g.last().Operation == models.OperationDelete
		if g.remove {
			deletes = append(deletes, g)
		} else {
			upserts = append(upserts, g)
		}
	}

	rankOf := func(table string) int {
		if r, ok := rank[table]; ok {
			return r
		}
		return len(rank)
	}

	sort.SliceStable(upserts, func(i, j int) bool {
		ri, rj := rankOf(upserts[i].table), rankOf(upserts[j].table)
		if ri != rj {
			return ri < rj
		}
		return before(upserts[i].first(), upserts[j].first())
	})
	sort.SliceStable(deletes, func(i, j int) bool {
		ri, rj := rankOf(deletes[i].table), rankOf(deletes[j].table)
		if ri != rj {
			return ri > rj
		}
		return before(deletes[i].first(), deletes[j].first())
	})

	return append(upserts, deletes...)
}

func before(a, b models.PendingChangeEntry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}

func tableRank(tables []string) map[string]int {
	rank := make(map[string]int, len(tables))
	for i, t := range tables {
		rank[t] = i
	}
	return rank
}
