package catalog

import (
	"encoding/json"
	"fmt"
)

// BNpcLink connects a battle NPC base row to the name row it is shown with.
type BNpcLink struct {
	BNpcBase uint32 `json:"bnpcBase"`
	BNpcName uint32 `json:"bnpcName"`
}

type bnpcContainer struct {
	BNpc []BNpcLink `json:"bnpc"`
}

// ParseBNpcLinks decodes {"bnpc":[...]} as well as the GraphQL response form
// {"data":{"bnpc":[...]}}.
func ParseBNpcLinks(data []byte) ([]BNpcLink, error) {
	var doc struct {
		bnpcContainer
		Data *bnpcContainer `json:"data"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bnpc links: %w", err)
	}
	if doc.Data != nil {
		return doc.Data.BNpc, nil
	}
	return doc.BNpc, nil
}

// LinksByBase groups name ids by base id, keeping file order.
func LinksByBase(links []BNpcLink) map[uint32][]uint32 {
	out := make(map[uint32][]uint32)
	for _, l := range links {
		out[l.BNpcBase] = append(out[l.BNpcBase], l.BNpcName)
	}
	return out
}
