package mahjong

import (
	"math/rand/v2"
)

const (
	PoolSize = NumTileTypes * 4
	HandSize = 13
)

// Pool 136 张实体牌，每种 4 张，三种数牌的 5 各有一张赤牌
type Pool struct {
	tiles []Tile
	rng   *rand.Rand
}

// NewPool 构建未洗的牌池。rng 为 nil 时 Shuffle 不改变顺序
func NewPool(rng *rand.Rand) *Pool {
	p := &Pool{
		tiles: make([]Tile, 0, PoolSize),
		rng:   rng,
	}
	p.generateSuitTiles(Man1, Man9)
	p.generateSuitTiles(Pin1, Pin9)
	p.generateSuitTiles(Sou1, Sou9)
	p.generateHonorTiles(East, Red)
	return p
}

// generateSuitTiles 生成一种花色的数牌，5 的第一张为赤牌
func (p *Pool) generateSuitTiles(start, end TileType) {
	for kind := start; kind <= end; kind++ {
		for i := 0; i < 4; i++ {
			p.tiles = append(p.tiles, Tile{
				Kind:  kind,
				Bonus: i == 0 && kind.Number() == 5,
			})
		}
	}
}

func (p *Pool) generateHonorTiles(start, end TileType) {
	for kind := start; kind <= end; kind++ {
		for i := 0; i < 4; i++ {
			p.tiles = append(p.tiles, NewTile(kind))
		}
	}
}

// Shuffle Fisher–Yates 洗牌，只改变顺序
func (p *Pool) Shuffle() {
	if p.rng == nil {
		return
	}
	p.rng.Shuffle(len(p.tiles), func(i, j int) {
		p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i]
	})
}

// TakeHand 从末尾取 n 张组成手牌，不足 n 张时不取
func (p *Pool) TakeHand(n int) (*Hand, bool) {
	if n < 0 || len(p.tiles) < n {
		return nil, false
	}
	rest := len(p.tiles) - n
	taken := make([]Tile, n)
	copy(taken, p.tiles[rest:])
	p.tiles = p.tiles[:rest]
	return NewHand(taken...), true
}

// Take 摸一张牌
func (p *Pool) Take() (Tile, bool) {
	if len(p.tiles) == 0 {
		return Tile{}, false
	}
	last := len(p.tiles) - 1
	t := p.tiles[last]
	p.tiles = p.tiles[:last]
	return t, true
}

func (p *Pool) Size() int {
	return len(p.tiles)
}

func (p *Pool) Tiles() []Tile {
	out := make([]Tile, len(p.tiles))
	copy(out, p.tiles)
	return out
}

func (p *Pool) String() string {
	return render(p.tiles)
}
