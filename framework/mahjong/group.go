package mahjong

import (
	"slices"
)

// Group 面子类型
type Group uint8

const (
	Chi Group = iota + 1 // 顺子
	Pon                  // 刻子
	Kan                  // 杠子
)

func (g Group) String() string {
	switch g {
	case Chi:
		return "Chi"
	case Pon:
		return "Pon"
	case Kan:
		return "Kan"
	default:
		return "None"
	}
}

// GroupOf 判断 3-4 张牌能否构成面子
func GroupOf(tiles []Tile) (Group, bool) {
	if len(tiles) != 3 && len(tiles) != 4 {
		return 0, false
	}
	sameValue := true
	for _, t := range tiles[1:] {
		if !t.Equal(tiles[0]) {
			sameValue = false
			break
		}
	}
	switch {
	case sameValue && len(tiles) == 4:
		return Kan, true
	case sameValue:
		return Pon, true
	case len(tiles) == 4:
		return 0, false
	}

	sorted := slices.Clone(tiles)
	slices.SortFunc(sorted, Tile.Compare)
	a, b, c := sorted[0], sorted[1], sorted[2]
	if !a.Suit().IsNumbered() || !SameSuit(a, b) || !SameSuit(b, c) {
		return 0, false
	}
	if b.Number()-a.Number() == 1 && c.Number()-b.Number() == 1 {
		return Chi, true
	}
	return 0, false
}
