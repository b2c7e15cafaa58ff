package mahjong

import (
	"strings"
)

// Suit 牌的种类
type Suit uint8

const (
	SuitMan    Suit = iota // 万子
	SuitPin                // 筒子
	SuitSou                // 索子
	SuitWind               // 风牌
	SuitDragon             // 箭牌
)

func (s Suit) IsNumbered() bool {
	return s <= SuitSou
}

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "man"
	case SuitPin:
		return "pin"
	case SuitSou:
		return "sou"
	case SuitWind:
		return "wind"
	case SuitDragon:
		return "dragon"
	default:
		return "unknown"
	}
}

type Wind uint8

const (
	WindEast  Wind = iota + 1 // 东风
	WindSouth                 // 南风
	WindWest                  // 西风
	WindNorth                 // 北风
)

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "east"
	case WindSouth:
		return "south"
	case WindWest:
		return "west"
	case WindNorth:
		return "north"
	default:
		return "unknown"
	}
}

type Dragon uint8

const (
	DragonWhite Dragon = iota + 1 // 白
	DragonGreen                   // 发
	DragonRed                     // 中
)

func (d Dragon) String() string {
	switch d {
	case DragonWhite:
		return "white"
	case DragonGreen:
		return "green"
	case DragonRed:
		return "red"
	default:
		return "unknown"
	}
}

// TileType 牌的种类编号（0-33），不区分赤牌
type TileType int

const (
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	Sou1
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9

	East
	South
	West
	North
	White
	Green
	Red

	NumTileTypes = 34
)

func (t TileType) Suit() Suit {
	switch {
	case t < Pin1:
		return SuitMan
	case t < Sou1:
		return SuitPin
	case t < East:
		return SuitSou
	case t < White:
		return SuitWind
	default:
		return SuitDragon
	}
}

// Number 数牌为 1-9，风牌 1-4，箭牌 1-3
func (t TileType) Number() int {
	switch t.Suit() {
	case SuitMan:
		return int(t-Man1) + 1
	case SuitPin:
		return int(t-Pin1) + 1
	case SuitSou:
		return int(t-Sou1) + 1
	case SuitWind:
		return int(t-East) + 1
	default:
		return int(t-White) + 1
	}
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= Sou9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

// IsTerminalOrHonor 幺九牌：一九数牌与字牌
func (t TileType) IsTerminalOrHonor() bool {
	if t.IsHonor() {
		return true
	}
	n := t.Number()
	return n == 1 || n == 9
}

func (t TileType) Valid() bool {
	return t >= Man1 && t <= Red
}

// Tile 一张实体牌。Kind 决定相等与排序，Bonus（赤牌）只影响显示
type Tile struct {
	Kind  TileType
	Bonus bool
}

func NewTile(kind TileType) Tile {
	return Tile{Kind: kind}
}

func NewBonusTile(kind TileType) Tile {
	return Tile{Kind: kind, Bonus: true}
}

func SuitedTile(suit Suit, number int) Tile {
	return Tile{Kind: typeOf(suit, number)}
}

func WindTile(w Wind) Tile {
	return Tile{Kind: East + TileType(w-WindEast)}
}

func DragonTile(d Dragon) Tile {
	return Tile{Kind: White + TileType(d-DragonWhite)}
}

func typeOf(suit Suit, number int) TileType {
	switch suit {
	case SuitMan:
		return Man1 + TileType(number-1)
	case SuitPin:
		return Pin1 + TileType(number-1)
	case SuitSou:
		return Sou1 + TileType(number-1)
	case SuitWind:
		return East + TileType(number-1)
	default:
		return White + TileType(number-1)
	}
}

func (t Tile) Suit() Suit {
	return t.Kind.Suit()
}

func (t Tile) Number() int {
	return t.Kind.Number()
}

// Equal 只比较牌种，赤牌与普通牌视为相同
func (t Tile) Equal(o Tile) bool {
	return t.Kind == o.Kind
}

// Compare 先按花色，再按数字/方位/颜色
func (t Tile) Compare(o Tile) int {
	switch {
	case t.Kind < o.Kind:
		return -1
	case t.Kind > o.Kind:
		return 1
	default:
		return 0
	}
}

func SameSuit(a, b Tile) bool {
	return a.Suit() == b.Suit()
}

func (t Tile) Wind() (Wind, bool) {
	if t.Suit() != SuitWind {
		return 0, false
	}
	return Wind(t.Number()), true
}

func (t Tile) Dragon() (Dragon, bool) {
	if t.Suit() != SuitDragon {
		return 0, false
	}
	return Dragon(t.Number()), true
}

var glyphs = [NumTileTypes]rune{
	'🀇', '🀈', '🀉', '🀊', '🀋', '🀌', '🀍', '🀎', '🀏',
	'🀙', '🀚', '🀛', '🀜', '🀝', '🀞', '🀟', '🀠', '🀡',
	'🀐', '🀑', '🀒', '🀓', '🀔', '🀕', '🀖', '🀗', '🀘',
	'🀀', '🀁', '🀂', '🀃',
	'🀆', '🀅', '🀄',
}

const bonusMarker = "*"

// Glyph 牌面字符，不含赤牌标记
func (t Tile) Glyph() rune {
	if !t.Kind.Valid() {
		return '?'
	}
	return glyphs[t.Kind]
}

func (t Tile) String() string {
	if t.Bonus {
		return string(t.Glyph()) + bonusMarker
	}
	return string(t.Glyph())
}

// render 按当前顺序以空格连接
func render(tiles []Tile) string {
	var b strings.Builder
	for i, t := range tiles {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
