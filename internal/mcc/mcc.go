// Package mcc maps merchant category codes to display categories.
//
// The table is embedded at build time, parsed once on first use and never
// mutated afterwards. Codes missing from the table resolve to Unknown.
package mcc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	_ "embed"

	"monozvit/internal/core"
)

//go:embed mcc_map.json
var rawTable []byte

// Unknown is the fallback bucket for codes missing from the table.
var Unknown = core.CategoryInfo{Name: "Інше", Emoji: "❓"}

var (
	loadOnce sync.Once
	table    map[string]core.CategoryInfo
)

func load() {
	if err := json.Unmarshal(rawTable, &table); err != nil {
		// The table ships inside the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("mcc: parse embedded table: %v", err))
	}
}

// Resolve returns the display category for an MCC. The lookup key is the
// decimal string form of the code.
func Resolve(code int) core.CategoryInfo {
	loadOnce.Do(load)
	if category, ok := table[strconv.Itoa(code)]; ok {
		return category
	}
	return Unknown
}

// Size reports how many codes the embedded table maps.
func Size() int {
	loadOnce.Do(load)
	return len(table)
}
