package mahjong

import "sync"

// Hand34 按牌种计数的手牌
type Hand34 [NumTileTypes]uint8

func Hand34FromTiles(tiles []Tile) Hand34 {
	var h Hand34
	for _, t := range tiles {
		if t.Kind.Valid() {
			h[t.Kind]++
		}
	}
	return h
}

// key 计数签名，作为缓存键
func (h Hand34) key(opts EngineOptions) string {
	var b [NumTileTypes + 1]byte
	for i := 0; i < NumTileTypes; i++ {
		b[i] = byte(h[i])
	}
	if opts.CountGapped {
		b[NumTileTypes] = 1
	}
	return string(b[:])
}

type EngineOptions struct {
	// CountGapped 嵌张（如 1-3）也算搭子
	CountGapped bool
}

func DefaultEngineOptions() EngineOptions {
	return EngineOptions{CountGapped: true}
}

// Breakdown 各牌型的向听数
type Breakdown struct {
	Standard        int `json:"standard"`
	SevenPairs      int `json:"sevenPairs"`
	ThirteenOrphans int `json:"thirteenOrphans"`
	Best            int `json:"best"`
}

func Evaluate(h Hand34, opts EngineOptions) Breakdown {
	b := Breakdown{
		Standard:        StandardDistance(h, opts),
		SevenPairs:      SevenPairsDistance(h),
		ThirteenOrphans: ThirteenOrphansDistance(h),
	}
	b.Best = min(b.Standard, b.SevenPairs, b.ThirteenOrphans)
	return b
}

// SevenPairsDistance 七对子向听数，同种牌最多算一对
func SevenPairsDistance(h Hand34) int {
	pairs := 0
	for _, c := range h {
		if c >= 2 {
			pairs++
		}
	}
	return 6 - min(pairs, 6)
}

var orphanTiles = [13]TileType{
	Man1, Man9,
	Pin1, Pin9,
	Sou1, Sou9,
	East, South, West, North,
	White, Green, Red,
}

// ThirteenOrphansDistance 国士无双向听数
func ThirteenOrphansDistance(h Hand34) int {
	return 13 - min(orphanScore(h), 13)
}

// StandardDistance 一般型（四面子一雀头）向听数
func StandardDistance(h Hand34, opts EngineOptions) int {
	d, _ := standard(h, opts)
	return max(d, 0)
}

// rawDistance 未截断的向听数，和牌时为 -1
func rawDistance(melds, partials int, pair bool) int {
	melds = min(melds, 4)
	partials = min(partials, 4-melds)
	d := (4-melds)*2 - partials
	if pair {
		d--
	}
	return d
}

type partKind uint8

const (
	partMeld partKind = iota
	partPair
	partPartial
)

// part 花色内的一组牌，offs 为相对花色首张的偏移
type part struct {
	kind  partKind
	group Group
	offs  [4]uint8
	n     uint8
}

func newPart(kind partKind, group Group, offs ...uint8) part {
	p := part{kind: kind, group: group, n: uint8(len(offs))}
	copy(p.offs[:], offs)
	return p
}

// option 单个花色能拆出的面子数、搭子数与雀头
type option struct {
	melds    int
	partials int
	pair     bool
	parts    []part
}

func (o option) covers(x option) bool {
	return o.pair == x.pair && o.melds >= x.melds && o.partials >= x.partials
}

// addOption 只保留不被覆盖的选项，相同时保留先找到的
func addOption(opts []option, o option) []option {
	for _, x := range opts {
		if x.covers(o) {
			return opts
		}
	}
	kept := opts[:0]
	for _, x := range opts {
		if !o.covers(x) {
			kept = append(kept, x)
		}
	}
	return append(kept, o)
}

type block struct {
	start    TileType
	size     int
	numbered bool
}

// 字牌不成顺子，风牌与箭牌可合为一段
var blocks = [4]block{
	{start: Man1, size: 9, numbered: true},
	{start: Pin1, size: 9, numbered: true},
	{start: Sou1, size: 9, numbered: true},
	{start: East, size: 7},
}

type blockKey struct {
	counts   [9]uint8
	numbered bool
	gapped   bool
}

const maxBlockMemo = 1 << 18

// 花色拆分结果只取决于该花色的计数，进程内共享
var (
	blockMu   sync.RWMutex
	blockMemo = make(map[blockKey][]option)
)

func lookupBlock(k blockKey) ([]option, bool) {
	blockMu.RLock()
	defer blockMu.RUnlock()
	opts, ok := blockMemo[k]
	return opts, ok
}

func storeBlock(k blockKey, opts []option) {
	blockMu.Lock()
	defer blockMu.Unlock()
	if len(blockMemo) < maxBlockMemo {
		blockMemo[k] = opts
	}
}

// blockOptions 枚举一个花色的全部拆分：面子（杠、刻、顺）、雀头、搭子，或跳过一张
func blockOptions(k blockKey) []option {
	if opts, ok := lookupBlock(k); ok {
		return opts
	}
	c := k.counts
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	if i == len(c) {
		opts := []option{{}}
		storeBlock(k, opts)
		return opts
	}

	var out []option
	try := func(p part, melds, partials int, pair bool) {
		next := k
		for _, off := range p.offs[:p.n] {
			next.counts[off]--
		}
		for _, sub := range blockOptions(next) {
			if pair && sub.pair {
				continue
			}
			o := option{melds: sub.melds + melds, partials: sub.partials + partials, pair: sub.pair || pair}
			if o.melds > 4 {
				continue
			}
			o.partials = min(o.partials, 4-o.melds)
			o.parts = make([]part, 0, len(sub.parts)+1)
			o.parts = append(append(o.parts, p), sub.parts...)
			out = addOption(out, o)
		}
	}

	x := uint8(i)
	run := k.numbered && i+2 < len(c)
	if c[i] >= 4 {
		try(newPart(partMeld, Kan, x, x, x, x), 1, 0, false)
	}
	if c[i] >= 3 {
		try(newPart(partMeld, Pon, x, x, x), 1, 0, false)
	}
	if run && c[i+1] > 0 && c[i+2] > 0 {
		try(newPart(partMeld, Chi, x, x+1, x+2), 1, 0, false)
	}
	if c[i] >= 2 {
		try(newPart(partPair, 0, x, x), 0, 0, true)
		try(newPart(partPartial, 0, x, x), 0, 1, false)
	}
	if k.numbered && i+1 < len(c) && c[i+1] > 0 {
		try(newPart(partPartial, 0, x, x+1), 0, 1, false)
	}
	if run && k.gapped && c[i+2] > 0 {
		try(newPart(partPartial, 0, x, x+2), 0, 1, false)
	}

	skip := k
	skip.counts[i]--
	for _, sub := range blockOptions(skip) {
		out = addOption(out, sub)
	}
	storeBlock(k, out)
	return out
}

// standard 各花色分别拆分后组合，最多一个雀头；返回未截断向听与各花色所选拆分
func standard(h Hand34, opts EngineOptions) (int, [len(blocks)]option) {
	var per [len(blocks)][]option
	for b, blk := range blocks {
		k := blockKey{numbered: blk.numbered, gapped: blk.numbered && opts.CountGapped}
		for j := 0; j < blk.size; j++ {
			k.counts[j] = h[int(blk.start)+j]
		}
		per[b] = blockOptions(k)
	}

	best := rawDistance(0, 0, false) + 1
	var pick, cur [len(blocks)]option
	var walk func(b, melds, partials int, pair bool)
	walk = func(b, melds, partials int, pair bool) {
		if b == len(blocks) {
			if d := rawDistance(melds, partials, pair); d < best {
				best = d
				pick = cur
			}
			return
		}
		for _, o := range per[b] {
			if pair && o.pair {
				continue
			}
			cur[b] = o
			walk(b+1, melds+o.melds, partials+o.partials, pair || o.pair)
		}
	}
	walk(0, 0, 0, false)
	return best, pick
}

// Meld 拆分出的面子
type Meld struct {
	Group Group
	Tiles []Tile
}

// Decomposition 一般型的一种最优拆分
type Decomposition struct {
	Melds    []Meld
	Pair     []Tile
	Partials [][]Tile
	Rest     []Tile
	Distance int
}

func decompose(tiles []Tile, opts EngineOptions) Decomposition {
	raw, pick := standard(Hand34FromTiles(tiles), opts)

	// 按牌种取回实体牌，保留赤牌标记
	byKind := make(map[TileType][]Tile, NumTileTypes)
	for _, t := range tiles {
		byKind[t.Kind] = append(byKind[t.Kind], t)
	}
	take := func(start TileType, p part) []Tile {
		out := make([]Tile, 0, p.n)
		for _, off := range p.offs[:p.n] {
			kind := start + TileType(off)
			q := byKind[kind]
			out = append(out, q[0])
			byKind[kind] = q[1:]
		}
		return out
	}

	d := Decomposition{Distance: max(raw, 0)}
	var partials []part
	var starts []TileType
	for b, o := range pick {
		for _, p := range o.parts {
			switch p.kind {
			case partMeld:
				d.Melds = append(d.Melds, Meld{Group: p.group, Tiles: take(blocks[b].start, p)})
			case partPair:
				d.Pair = take(blocks[b].start, p)
			case partPartial:
				partials = append(partials, p)
				starts = append(starts, blocks[b].start)
			}
		}
	}
	// 超出 4 组的搭子不计入向听，归为余牌
	for j, p := range partials {
		if len(d.Partials) >= 4-min(len(d.Melds), 4) {
			break
		}
		d.Partials = append(d.Partials, take(starts[j], p))
	}
	for _, t := range tiles {
		if q := byKind[t.Kind]; len(q) > 0 {
			d.Rest = append(d.Rest, q[0])
			byKind[t.Kind] = q[1:]
		}
	}
	return d
}
