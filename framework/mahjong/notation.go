package mahjong

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

var (
	ErrUnknownTile     = errors.New("unknown tile")
	ErrTooManyCopies   = errors.New("too many copies of tile")
	ErrInvalidHandSize = errors.New("invalid hand size")
	ErrPoolExhausted   = errors.New("tile pool exhausted")
)

var suitLetters = map[rune]Suit{
	'm': SuitMan,
	'p': SuitPin,
	's': SuitSou,
	'z': SuitWind, // 1-4 风牌，5-7 箭牌
}

// Notation 紧凑记法：5m、0m（赤五万）、1z（东）
func (t Tile) Notation() string {
	var letter byte
	n := t.Number()
	switch t.Suit() {
	case SuitMan:
		letter = 'm'
	case SuitPin:
		letter = 'p'
	case SuitSou:
		letter = 's'
	case SuitWind:
		letter = 'z'
	case SuitDragon:
		letter = 'z'
		n += 4
	}
	if t.Bonus {
		n = 0
	}
	return strconv.Itoa(n) + string(letter)
}

// ParseTiles 解析 "123m 406p 789s 1155z" 形式的牌串
func ParseTiles(s string) ([]Tile, error) {
	var (
		out     []Tile
		pending []int
		start   int
	)
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			if len(pending) == 0 {
				start = i
			}
			pending = append(pending, int(r-'0'))
		default:
			suit, ok := suitLetters[r]
			if !ok {
				return nil, fmt.Errorf("position %d: suit letter %q: %w", i, r, ErrUnknownTile)
			}
			if len(pending) == 0 {
				return nil, fmt.Errorf("position %d: suit %q without digits: %w", i, r, ErrUnknownTile)
			}
			for _, d := range pending {
				t, err := tileFromDigit(suit, d)
				if err != nil {
					return nil, fmt.Errorf("position %d: %w", start, err)
				}
				out = append(out, t)
			}
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("position %d: digits without suit: %w", start, ErrUnknownTile)
	}
	if err := checkCopies(out); err != nil {
		return nil, err
	}
	return out, nil
}

func tileFromDigit(suit Suit, d int) (Tile, error) {
	if suit == SuitWind {
		switch {
		case d >= 1 && d <= 4:
			return NewTile(East + TileType(d-1)), nil
		case d >= 5 && d <= 7:
			return NewTile(White + TileType(d-5)), nil
		default:
			return Tile{}, fmt.Errorf("honor digit %d: %w", d, ErrUnknownTile)
		}
	}
	if d == 0 {
		return NewBonusTile(typeOf(suit, 5)), nil
	}
	return NewTile(typeOf(suit, d)), nil
}

func checkCopies(tiles []Tile) error {
	var counts [NumTileTypes]int
	var bonus [3]int
	for _, t := range tiles {
		counts[t.Kind]++
		if counts[t.Kind] > 4 {
			return fmt.Errorf("%s: %w", t.Notation(), ErrTooManyCopies)
		}
		if t.Bonus && t.Suit().IsNumbered() {
			bonus[t.Suit()]++
			if bonus[t.Suit()] > 1 {
				return fmt.Errorf("%s: %w", t.Notation(), ErrTooManyCopies)
			}
		}
	}
	return nil
}

// ParseHand 解析并校验手牌张数（13 或 14）
func ParseHand(s string) (*Hand, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return nil, err
	}
	h := NewHand(tiles...)
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// MustParseHand 用于测试与固定牌例，不校验张数
func MustParseHand(s string) *Hand {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return NewHand(tiles...)
}
