package api

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"goshanten/common/http"
	"goshanten/common/log"
	"goshanten/framework/mahjong"
)

type handlers struct {
	analyzer Analyzer
}

type shantenRequest struct {
	Hand string `json:"hand" binding:"required"`
}

type acceptanceView struct {
	Tile      string `json:"tile"`
	Remaining int    `json:"remaining"`
}

type meldView struct {
	Group string   `json:"group"`
	Tiles []string `json:"tiles"`
}

type decompositionView struct {
	Melds    []meldView `json:"melds"`
	Pair     []string   `json:"pair,omitempty"`
	Partials [][]string `json:"partials,omitempty"`
	Rest     []string   `json:"rest,omitempty"`
}

type shantenResponse struct {
	Hand          string            `json:"hand"`
	Glyphs        string            `json:"glyphs"`
	Shanten       int               `json:"shanten"`
	Breakdown     mahjong.Breakdown `json:"breakdown"`
	Decomposition decompositionView `json:"decomposition"`
	Acceptance    []acceptanceView  `json:"acceptance,omitempty"`
	AcceptTotal   int               `json:"acceptTotal"`
}

// ShantenHandler 计算一手牌的向听
func (h *handlers) ShantenHandler(c *http.Context) error {
	var req shantenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("请求参数错误")
		return nil
	}

	hand, err := mahjong.ParseHand(req.Hand)
	if err != nil {
		if isInvalidHand(err) {
			c.ErrorWithCode(http.CodeInvalidHand, err.Error())
			return nil
		}
		return err
	}
	c.Success(h.describe(hand))
	return nil
}

type dealResponse struct {
	DealID  string `json:"dealId"`
	Seed    uint64 `json:"seed"`
	Hand    string `json:"hand"`
	Glyphs  string `json:"glyphs"`
	Shanten int    `json:"shanten"`
	Left    int    `json:"left"`
}

// DealHandler 从新洗的牌池配一手牌
func (h *handlers) DealHandler(c *http.Context) error {
	var seed uint64
	if raw := c.GetQuery("seed"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.BadRequest("seed 必须为非负整数")
			return nil
		}
		seed = v
	}

	pool, seed := h.analyzer.NewPool(seed)
	hand, ok := pool.TakeHand(h.analyzer.HandSize())
	if !ok {
		c.ErrorWithCode(http.CodeExhausted, mahjong.ErrPoolExhausted.Error())
		return nil
	}
	if err := hand.Validate(); err != nil {
		c.ErrorWithCode(http.CodeInvalidHand, err.Error())
		return nil
	}

	resp := dealResponse{
		DealID:  uuid.NewString(),
		Seed:    seed,
		Hand:    hand.Notation(),
		Glyphs:  hand.String(),
		Shanten: h.analyzer.Searcher().Shanten(hand),
		Left:    pool.Size(),
	}
	log.With("deal", resp.DealID, "seed", seed).Debug("dealt", "hand", resp.Hand, "shanten", resp.Shanten)
	c.Success(resp)
	return nil
}

func (h *handlers) describe(hand *mahjong.Hand) shantenResponse {
	s := h.analyzer.Searcher()
	b := s.Breakdown(hand)
	resp := shantenResponse{
		Hand:          hand.Notation(),
		Glyphs:        hand.String(),
		Shanten:       b.Best,
		Breakdown:     b,
		Decomposition: viewOf(s.Decompose(hand)),
	}
	accept, total := s.Acceptance(hand)
	for _, a := range accept {
		resp.Acceptance = append(resp.Acceptance, acceptanceView{
			Tile:      mahjong.NewTile(a.Kind).Notation(),
			Remaining: a.Remaining,
		})
	}
	resp.AcceptTotal = total
	return resp
}

func viewOf(d mahjong.Decomposition) decompositionView {
	v := decompositionView{Melds: []meldView{}}
	for _, m := range d.Melds {
		v.Melds = append(v.Melds, meldView{Group: m.Group.String(), Tiles: notations(m.Tiles)})
	}
	v.Pair = notations(d.Pair)
	for _, p := range d.Partials {
		v.Partials = append(v.Partials, notations(p))
	}
	v.Rest = notations(d.Rest)
	return v
}

func notations(tiles []mahjong.Tile) []string {
	if len(tiles) == 0 {
		return nil
	}
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.Notation()
	}
	return out
}

// isInvalidHand 解析类错误
func isInvalidHand(err error) bool {
	return errors.Is(err, mahjong.ErrUnknownTile) ||
		errors.Is(err, mahjong.ErrTooManyCopies) ||
		errors.Is(err, mahjong.ErrInvalidHandSize)
}
