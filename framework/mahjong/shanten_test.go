package mahjong

import (
	"testing"
)

func TestShanten_KnownHands(t *testing.T) {
	cases := []struct {
		name string
		hand string
		want Breakdown
	}{
		{
			name: "seven pairs tenpai",
			hand: "1122334455667p",
			want: Breakdown{Standard: 0, SevenPairs: 0, ThirteenOrphans: 11, Best: 0},
		},
		{
			name: "thirteen orphans complete",
			hand: "19m19p19s12345677z",
			want: Breakdown{Standard: 7, SevenPairs: 5, ThirteenOrphans: 0, Best: 0},
		},
		{
			name: "thirteen orphans thirteen-sided",
			hand: "19m19p19s1234567z",
			want: Breakdown{Standard: 8, SevenPairs: 6, ThirteenOrphans: 0, Best: 0},
		},
		{
			name: "thirteen orphans with duplicate",
			hand: "19m19p19s1234566z",
			want: Breakdown{Standard: 7, SevenPairs: 5, ThirteenOrphans: 0, Best: 0},
		},
		{
			name: "scattered",
			hand: "147m258p369s1234z",
			want: Breakdown{Standard: 8, SevenPairs: 6, ThirteenOrphans: 7, Best: 6},
		},
		{
			name: "standard shanpon tenpai",
			hand: "123m456p789s1122z",
			want: Breakdown{Standard: 0, SevenPairs: 4, ThirteenOrphans: 8, Best: 0},
		},
		{
			name: "standard one away",
			hand: "123m456p78s11223z",
			want: Breakdown{Standard: 1, SevenPairs: 4, ThirteenOrphans: 8, Best: 1},
		},
		{
			name: "quad counted as one meld",
			hand: "1111m234p567s89s5z",
			want: Breakdown{Standard: 1, SevenPairs: 5, ThirteenOrphans: 9, Best: 1},
		},
		{
			name: "complete standard",
			hand: "123m456p789s11122z",
			want: Breakdown{Standard: 0, SevenPairs: 4, ThirteenOrphans: 8, Best: 0},
		},
	}
	for _, c := range cases {
		got := MustParseHand(c.hand).Breakdown()
		if got != c.want {
			t.Fatalf("%s (%s): expected %+v, got %+v", c.name, c.hand, c.want, got)
		}
	}
}

func TestThirteenOrphansDistance_CompleteHandClamps(t *testing.T) {
	h := MustParseHand("19m19p19s12345677z").Counts()
	if got := orphanScore(h); got != 14 {
		t.Fatalf("expected score 14, got %d", got)
	}
	if got := ThirteenOrphansDistance(h); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if !isComplete(h, DefaultEngineOptions()) {
		t.Fatalf("expected complete hand")
	}
}

func TestShanten_SevenPairsCountsDistinctPairs(t *testing.T) {
	// 1111m 只算一对
	h := MustParseHand("1111m2233p44s556z")
	if got := SevenPairsDistance(h.Counts()); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestShanten_BonusFiveInterchangeable(t *testing.T) {
	plain := MustParseHand("345p456m789s1122z")
	bonus := MustParseHand("340p456m789s1122z")
	if plain.Breakdown() != bonus.Breakdown() {
		t.Fatalf("bonus five changed result: %+v vs %+v", plain.Breakdown(), bonus.Breakdown())
	}
	pair := MustParseHand("05m123p456p789s11z")
	if got := pair.Shanten(); got != 0 {
		t.Fatalf("bonus and plain five expected to pair, got %d", got)
	}
}

func TestShanten_GappedPartial(t *testing.T) {
	h := MustParseHand("13m456p789s11234z").Counts()
	if got := StandardDistance(h, EngineOptions{CountGapped: true}); got != 2 {
		t.Fatalf("with gapped shapes expected 2, got %d", got)
	}
	if got := StandardDistance(h, EngineOptions{CountGapped: false}); got != 3 {
		t.Fatalf("adjacent shapes only expected 3, got %d", got)
	}
}

func TestShanten_RangeOnRandomDeals(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		p := NewPool(seeded(seed))
		p.Shuffle()
		h, ok := p.TakeHand(HandSize)
		if !ok {
			t.Fatalf("seed %d: take hand failed", seed)
		}
		b := h.Breakdown()
		if b.Standard < 0 || b.Standard > 8 {
			t.Fatalf("seed %d %s: standard out of range: %d", seed, h.Notation(), b.Standard)
		}
		if b.SevenPairs < 0 || b.SevenPairs > 6 {
			t.Fatalf("seed %d %s: seven pairs out of range: %d", seed, h.Notation(), b.SevenPairs)
		}
		if b.ThirteenOrphans < 0 || b.ThirteenOrphans > 13 {
			t.Fatalf("seed %d %s: thirteen orphans out of range: %d", seed, h.Notation(), b.ThirteenOrphans)
		}
		if b.Best != min(b.Standard, b.SevenPairs, b.ThirteenOrphans) || b.Best > 8 {
			t.Fatalf("seed %d %s: best %d is not the minimum of %+v", seed, h.Notation(), b.Best, b)
		}
		if h.Shanten() != b.Best {
			t.Fatalf("seed %d: Shanten() %d != Breakdown().Best %d", seed, h.Shanten(), b.Best)
		}
	}
}

func TestShanten_DrawNeverWorsens(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		p := NewPool(seeded(seed))
		p.Shuffle()
		h, _ := p.TakeHand(HandSize)
		before := h.Shanten()
		tile, _ := p.Take()
		h.Put(tile)
		if after := h.Shanten(); after > before {
			t.Fatalf("seed %d: drawing %s raised shanten %d -> %d", seed, tile.Notation(), before, after)
		}
	}
}

func TestDecompose_CompleteHand(t *testing.T) {
	d := MustParseHand("123m456p789s11122z").Decompose()
	if d.Distance != 0 || len(d.Melds) != 4 || len(d.Pair) != 2 || len(d.Rest) != 0 {
		t.Fatalf("expected 4 melds and a pair, got %+v", d)
	}
	if !d.Pair[0].Equal(NewTile(South)) {
		t.Fatalf("expected south pair, got %s", d.Pair[0].Notation())
	}
	groups := map[Group]int{}
	for _, m := range d.Melds {
		groups[m.Group]++
	}
	if groups[Chi] != 3 || groups[Pon] != 1 {
		t.Fatalf("expected 3 chi and 1 pon, got %v", groups)
	}
}

func TestDecompose_KeepsBonusTiles(t *testing.T) {
	d := MustParseHand("340p123m789s11z23z").Decompose()
	found := false
	for _, m := range d.Melds {
		for _, tile := range m.Tiles {
			if tile.Bonus {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected bonus five to stay in its meld, got %+v", d)
	}
	total := len(d.Pair) + len(d.Rest)
	for _, m := range d.Melds {
		total += len(m.Tiles)
	}
	for _, p := range d.Partials {
		total += len(p)
	}
	if total != 13 {
		t.Fatalf("decomposition must cover all 13 tiles, got %d", total)
	}
}
