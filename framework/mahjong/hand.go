package mahjong

import (
	"fmt"
	"slices"
)

// Hand 玩家手牌，始终保持排序；摸牌后暂时为 14 张
type Hand struct {
	tiles []Tile
}

func NewHand(tiles ...Tile) *Hand {
	h := &Hand{tiles: make([]Tile, 0, 4*4+2)}
	h.tiles = append(h.tiles, tiles...)
	h.sort()
	return h
}

func (h *Hand) sort() {
	slices.SortStableFunc(h.tiles, Tile.Compare)
}

// Take 取出排序后第 index 张，越界返回 false 且不修改手牌
func (h *Hand) Take(index int) (Tile, bool) {
	if index < 0 || index >= len(h.tiles) {
		return Tile{}, false
	}
	t := h.tiles[index]
	h.tiles = slices.Delete(h.tiles, index, index+1)
	return t, true
}

// Put 放入一张牌并恢复排序
func (h *Hand) Put(t Tile) {
	h.tiles = append(h.tiles, t)
	h.sort()
}

func (h *Hand) Len() int {
	return len(h.tiles)
}

func (h *Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

// Validate 向听计算前由调用方校验张数
func (h *Hand) Validate() error {
	if n := len(h.tiles); n != HandSize && n != HandSize+1 {
		return fmt.Errorf("%d tiles: %w", n, ErrInvalidHandSize)
	}
	return nil
}

// Counts 转为 34 种牌的计数
func (h *Hand) Counts() Hand34 {
	return Hand34FromTiles(h.tiles)
}

// Shanten 三种牌型向听数的最小值
func (h *Hand) Shanten() int {
	return h.Breakdown().Best
}

func (h *Hand) Breakdown() Breakdown {
	return Evaluate(h.Counts(), DefaultEngineOptions())
}

// Decompose 返回一种最优的一般型拆分
func (h *Hand) Decompose() Decomposition {
	return decompose(h.tiles, DefaultEngineOptions())
}

func (h *Hand) String() string {
	return render(h.tiles)
}

// Notation 紧凑记法，如 123m456p
func (h *Hand) Notation() string {
	var out []byte
	for i, t := range h.tiles {
		n := t.Notation()
		out = append(out, n[0])
		if i+1 == len(h.tiles) || h.tiles[i+1].Notation()[1] != n[1] {
			out = append(out, n[1])
		}
	}
	return string(out)
}
