package privacy

import (
	"sort"

	"github.com/arborcroft/dpgraph/graphmodel"
)

// BatchPrivacyUsage composes the per-node usages of every released
// mechanism node in an analysis into one analysis-wide total, honoring
// spec §7's partition-aware composition: nodes sharing a GroupID with
// the same PartitionID and Index are releases against the very same
// partition's data and compose sequentially with each other; releases
// against distinct Index values of the same PartitionID compose in
// parallel; everything else (ungrouped nodes, and each partition's own
// parallel-composed total) composes sequentially against the rest of
// the analysis.
//
// usages and groups are keyed by the same release node ids; a node
// present in usages but absent from groups is treated as ungrouped.
func BatchPrivacyUsage(usages map[uint32]Usage, groups map[uint32]*graphmodel.GroupID) (Usage, error) {
	for id, u := range usages {
		if err := u.Validate(); err != nil {
			return Usage{}, err
		}
		_ = id
	}

	type partitionKey = uint32
	byPartition := make(map[partitionKey]map[string][]Usage)
	var ungrouped []Usage

	for id, u := range usages {
		g, ok := groups[id]
		if !ok || g == nil {
			ungrouped = append(ungrouped, u)
			continue
		}
		if byPartition[g.PartitionID] == nil {
			byPartition[g.PartitionID] = make(map[string][]Usage)
		}
		key := g.Index.String()
		byPartition[g.PartitionID][key] = append(byPartition[g.PartitionID][key], u)
	}

	all := append([]Usage(nil), ungrouped...)

	partitionIDs := make([]partitionKey, 0, len(byPartition))
	for pid := range byPartition {
		partitionIDs = append(partitionIDs, pid)
	}
	sort.Slice(partitionIDs, func(i, j int) bool { return partitionIDs[i] < partitionIDs[j] })

	for _, pid := range partitionIDs {
		indices := byPartition[pid]
		keys := make([]string, 0, len(indices))
		for k := range indices {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var perIndex []Usage
		for _, k := range keys {
			perIndex = append(perIndex, Sequential(indices[k]...))
		}
		all = append(all, Parallel(perIndex...))
	}

	return Sequential(all...), nil
}
