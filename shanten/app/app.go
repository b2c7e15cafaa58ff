package app

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"goshanten/common/cache"
	"goshanten/common/config"
	"goshanten/common/log"
	"goshanten/framework/mahjong"
)

// App 持有向听计算器与其缓存
type App struct {
	cfg      *config.Config
	cache    *cache.GeneralCache
	searcher *mahjong.Searcher
}

func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}
	var memo mahjong.Memo
	if cfg.Shanten.CacheMaxCost > 0 {
		c, err := cache.NewGeneralCache(cfg.Shanten.CacheMaxCost, time.Duration(cfg.Shanten.CacheTTL)*time.Second)
		if err != nil {
			return nil, err
		}
		a.cache = c
		memo = c
	}
	a.searcher = mahjong.NewSearcher(mahjong.EngineOptions{CountGapped: cfg.Shanten.CountGapped}, memo)
	return a, nil
}

func (a *App) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

func (a *App) Searcher() *mahjong.Searcher {
	return a.searcher
}

func (a *App) HandSize() int {
	return a.cfg.Pool.HandSize
}

func (a *App) CacheStats() cache.Stats {
	if a.cache == nil {
		return cache.Stats{}
	}
	return a.cache.Stats()
}

// NewPool 洗好的牌池及实际使用的种子；seed 为 0 时依次取配置、当前时间
func (a *App) NewPool(seed uint64) (*mahjong.Pool, uint64) {
	if seed == 0 {
		seed = a.cfg.Pool.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("new pool, seed=%d", seed)
	p := mahjong.NewPool(rand.New(rand.NewPCG(seed, seed>>1|1)))
	p.Shuffle()
	return p, seed
}

// Demo 配牌、摸一张、打出第 discard 张，前后各输出一次向听
func (a *App) Demo(w io.Writer, seed uint64, discard int) error {
	pool, used := a.NewPool(seed)
	log.Info("demo seed=%d", used)
	hand, ok := pool.TakeHand(a.HandSize())
	if !ok {
		return fmt.Errorf("deal %d tiles: %w", a.HandSize(), mahjong.ErrPoolExhausted)
	}
	if err := hand.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Initial hand (%d-shanten): %s\n", a.searcher.Shanten(hand), hand)

	tile, ok := pool.Take()
	if !ok {
		return fmt.Errorf("draw: %w", mahjong.ErrPoolExhausted)
	}
	if _, ok := hand.Take(discard); !ok {
		log.Warn("discard index %d out of range, keeping hand", discard)
	}
	hand.Put(tile)
	fmt.Fprintf(w, "Updated hand (%d-shanten): %s\n", a.searcher.Shanten(hand), hand)
	return nil
}

// Eval 解析牌串并输出各牌型向听、拆分与有效牌
func (a *App) Eval(w io.Writer, notation string) error {
	hand, err := mahjong.ParseHand(notation)
	if err != nil {
		return err
	}
	b := a.searcher.Breakdown(hand)
	fmt.Fprintf(w, "Hand: %s (%s)\n", hand, hand.Notation())
	fmt.Fprintf(w, "Shanten: %d (standard %d, seven pairs %d, thirteen orphans %d)\n",
		b.Best, b.Standard, b.SevenPairs, b.ThirteenOrphans)
	fmt.Fprintf(w, "Decomposition: %s\n", FormatDecomposition(a.searcher.Decompose(hand)))

	accept, total := a.searcher.Acceptance(hand)
	if hand.Len() == mahjong.HandSize {
		fmt.Fprintf(w, "Acceptance (%d kinds, %d tiles): %s\n", len(accept), total, FormatAcceptance(accept))
	}
	return nil
}

func FormatDecomposition(d mahjong.Decomposition) string {
	var parts []string
	for _, m := range d.Melds {
		parts = append(parts, fmt.Sprintf("%s[%s]", m.Group, joinTiles(m.Tiles)))
	}
	if len(d.Pair) > 0 {
		parts = append(parts, fmt.Sprintf("Pair[%s]", joinTiles(d.Pair)))
	}
	for _, p := range d.Partials {
		parts = append(parts, fmt.Sprintf("Partial[%s]", joinTiles(p)))
	}
	if len(d.Rest) > 0 {
		parts = append(parts, fmt.Sprintf("Rest[%s]", joinTiles(d.Rest)))
	}
	return strings.Join(parts, " ")
}

func FormatAcceptance(accept []mahjong.Acceptance) string {
	parts := make([]string, 0, len(accept))
	for _, x := range accept {
		parts = append(parts, fmt.Sprintf("%sx%d", mahjong.NewTile(x.Kind).Notation(), x.Remaining))
	}
	return strings.Join(parts, " ")
}

func joinTiles(tiles []mahjong.Tile) string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.String()
	}
	return strings.Join(out, " ")
}

// IsUserError 输入错误，无需打印堆栈
func IsUserError(err error) bool {
	return errors.Is(err, mahjong.ErrUnknownTile) ||
		errors.Is(err, mahjong.ErrTooManyCopies) ||
		errors.Is(err, mahjong.ErrInvalidHandSize)
}
