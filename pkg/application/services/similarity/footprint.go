package similarity

import "strings"

// footprintGroups lists package codes that share a land pattern
var footprintGroups = [][]string{
	{"SOT23", "SOT23-3", "TO236"},
	{"SOIC", "SO", "SOIC8", "SO8"},
	{"DPAK", "TO252"},
	{"D2PAK", "TO263"},
	{"LFPAK56", "SO8FL", "POWER56", "TDSON8"},
	{"SMA", "DO214AC"},
	{"SMB", "DO214AA"},
	{"SMC", "DO214AB"},
	{"SOT23-5", "SOT753", "TSOP5"},
	{"SC70-5", "SOT353"},
	{"SOT323", "SC70"},
}

var footprintIndex = func() map[string]int {
	m := make(map[string]int)
	for i, g := range footprintGroups {
		for _, code := range g {
			m[code] = i
		}
	}
	return m
}()

// FootprintsEquivalent reports whether two package codes are equal or share
// a land pattern
func FootprintsEquivalent(a, b string) bool {
	a, b = strings.ToUpper(a), strings.ToUpper(b)
	if a == b {
		return a != ""
	}
	ga, okA := footprintIndex[a]
	gb, okB := footprintIndex[b]
	return okA && okB && ga == gb
}
