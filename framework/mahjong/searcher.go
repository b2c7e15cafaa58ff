package mahjong

// Memo 向听缓存，common/cache.GeneralCache 满足此接口
type Memo interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}) bool
}

// Searcher 带缓存的向听计算，缓存键为 34 种牌的计数签名
type Searcher struct {
	opts EngineOptions
	memo Memo
}

// NewSearcher memo 为 nil 时不缓存
func NewSearcher(opts EngineOptions, memo Memo) *Searcher {
	return &Searcher{opts: opts, memo: memo}
}

func (s *Searcher) Options() EngineOptions {
	return s.opts
}

// Evaluate 计算各牌型向听数
func (s *Searcher) Evaluate(h Hand34) Breakdown {
	if s.memo == nil {
		return Evaluate(h, s.opts)
	}
	key := h.key(s.opts)
	if v, ok := s.memo.Get(key); ok {
		if b, ok := v.(Breakdown); ok {
			return b
		}
	}
	b := Evaluate(h, s.opts)
	s.memo.Set(key, b)
	return b
}

func (s *Searcher) Breakdown(h *Hand) Breakdown {
	return s.Evaluate(h.Counts())
}

func (s *Searcher) Shanten(h *Hand) int {
	return s.Breakdown(h).Best
}

func (s *Searcher) Decompose(h *Hand) Decomposition {
	return decompose(h.tiles, s.opts)
}

// Acceptance 摸到后能减少向听的牌
type Acceptance struct {
	Kind      TileType
	Remaining int // 4 减去手中已有张数
}

// Acceptance 只对 13 张手牌有意义，返回有效牌及其剩余总张数
func (s *Searcher) Acceptance(h *Hand) ([]Acceptance, int) {
	if h.Len() != HandSize {
		return nil, 0
	}
	h34 := h.Counts()
	base := s.Evaluate(h34).Best

	var out []Acceptance
	total := 0
	for t := 0; t < NumTileTypes; t++ {
		if h34[t] >= 4 {
			continue
		}
		work := h34
		work[t]++
		if s.Evaluate(work).Best < base || (base == 0 && isComplete(work, s.opts)) {
			remaining := 4 - int(h34[t])
			out = append(out, Acceptance{Kind: TileType(t), Remaining: remaining})
			total += remaining
		}
	}
	return out, total
}

// isComplete 和牌判定：任一牌型未截断向听为 -1
func isComplete(h Hand34, opts EngineOptions) bool {
	if d, _ := standard(h, opts); d < 0 {
		return true
	}
	pairs := 0
	for _, c := range h {
		if c >= 2 {
			pairs++
		}
	}
	if pairs >= 7 {
		return true
	}
	return orphanScore(h) == 14
}

// orphanScore 幺九牌种数，再加是否有对子
func orphanScore(h Hand34) int {
	score := 0
	pair := false
	for _, t := range orphanTiles {
		if h[t] > 0 {
			score++
			if h[t] >= 2 {
				pair = true
			}
		}
	}
	if pair {
		score++
	}
	return score
}
