package pool

import (
	"fmt"
	"math/big"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// SwapRole tags how a pool can participate in a route for one
// tokenIn/tokenOut request. It is assigned during classification and is the
// only mutable state on a typed pool.
type SwapRole uint8

const (
	RoleNone SwapRole = iota
	RoleDirect
	RoleHopIn
	RoleHopOut
)

func (r SwapRole) String() string {
	switch r {
	case RoleDirect:
		return "direct"
	case RoleHopIn:
		return "hopIn"
	case RoleHopOut:
		return "hopOut"
	default:
		return "none"
	}
}

// Type is the closed set of supported pool variants.
type Type uint8

const (
	TypeWeighted Type = iota
	TypeStable
	TypeMetaStable
	TypeElement
	TypeLinear
)

func (t Type) String() string {
	switch t {
	case TypeWeighted:
		return "Weighted"
	case TypeStable:
		return "Stable"
	case TypeMetaStable:
		return "MetaStable"
	case TypeElement:
		return "Element"
	case TypeLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// PairData is derived per (pool, tokenIn, tokenOut). It carries the leg
// decimals plus the inputs of the normalized-liquidity heuristic. Weight and
// amp fields are nil for pool types that do not use them.
type PairData struct {
	PoolID      string
	TokenIn     string
	TokenOut    string
	DecimalsIn  uint8
	DecimalsOut uint8
	BalanceIn   *big.Float
	BalanceOut  *big.Float
	SwapFee     *big.Float
	WeightIn    *big.Float
	WeightOut   *big.Float
	Amp         *big.Float
}

// Pool is a typed liquidity pool built from a raw catalog record. Pools are
// constructed fresh per routing request; aside from the swap role they are
// immutable after construction.
type Pool interface {
	ID() string
	Address() string
	Type() Type
	TokensList() []string
	Role() SwapRole
	SetRole(SwapRole)
	PairData(tokenIn, tokenOut string) (PairData, error)
	NormalizedLiquidity(pd PairData) *big.Float
}

type token struct {
	address   string
	balance   *big.Float
	decimals  uint8
	weight    *big.Float
	priceRate *big.Float
}

type base struct {
	id      string
	address string
	typ     Type
	tokens  []token
	list    []string
	swapFee *big.Float
	role    SwapRole
}

func newBase(raw model.SubgraphPool, typ Type) (base, error) {
	if raw.ID == "" {
		return base{}, fmt.Errorf("pool id is empty")
	}

	swapFee, err := parseDecimal(raw.SwapFee)
	if err != nil {
		return base{}, fmt.Errorf("swap fee: %w", err)
	}

	tokens := make([]token, 0, len(raw.Tokens))
	for _, rt := range raw.Tokens {
		balance, err := parseDecimal(rt.Balance)
		if err != nil {
			return base{}, fmt.Errorf("token %s balance: %w", rt.Address, err)
		}
		decimals, err := decimalsFromInt(rt.Decimals)
		if err != nil {
			return base{}, fmt.Errorf("token %s: %w", rt.Address, err)
		}
		weight, err := parseOptionalDecimal(rt.Weight)
		if err != nil {
			return base{}, fmt.Errorf("token %s weight: %w", rt.Address, err)
		}
		priceRate, err := parseOptionalDecimal(rt.PriceRate)
		if err != nil {
			return base{}, fmt.Errorf("token %s price rate: %w", rt.Address, err)
		}
		tokens = append(tokens, token{
			address:   rt.Address,
			balance:   balance,
			decimals:  decimals,
			weight:    weight,
			priceRate: priceRate,
		})
	}

	list := make([]string, len(raw.TokensList))
	copy(list, raw.TokensList)

	return base{
		id:      raw.ID,
		address: raw.Address,
		typ:     typ,
		tokens:  tokens,
		list:    list,
		swapFee: swapFee,
	}, nil
}

func (b *base) ID() string           { return b.id }
func (b *base) Address() string      { return b.address }
func (b *base) Type() Type           { return b.typ }
func (b *base) TokensList() []string { return b.list }
func (b *base) Role() SwapRole       { return b.role }
func (b *base) SetRole(r SwapRole)   { b.role = r }

// pair resolves the constituent tokens for a swap direction.
func (b *base) pair(tokenIn, tokenOut string) (token, token, error) {
	var in, out token
	var haveIn, haveOut bool
	for _, t := range b.tokens {
		if t.address == tokenIn {
			in = t
			haveIn = true
		}
		if t.address == tokenOut {
			out = t
			haveOut = true
		}
	}
	if !haveIn {
		return token{}, token{}, fmt.Errorf("pool %s: token %s not found", b.id, tokenIn)
	}
	if !haveOut {
		return token{}, token{}, fmt.Errorf("pool %s: token %s not found", b.id, tokenOut)
	}
	return in, out, nil
}

func (b *base) pairData(tokenIn, tokenOut string) (PairData, error) {
	in, out, err := b.pair(tokenIn, tokenOut)
	if err != nil {
		return PairData{}, err
	}
	return PairData{
		PoolID:      b.id,
		TokenIn:     tokenIn,
		TokenOut:    tokenOut,
		DecimalsIn:  in.decimals,
		DecimalsOut: out.decimals,
		BalanceIn:   in.balance,
		BalanceOut:  out.balance,
		SwapFee:     b.swapFee,
	}, nil
}

func parseDecimal(s string) (*big.Float, error) {
	if s == "" {
		return nil, fmt.Errorf("empty decimal value")
	}
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value: %q", s)
	}
	return f, nil
}

func parseOptionalDecimal(s string) (*big.Float, error) {
	if s == "" {
		return nil, nil
	}
	return parseDecimal(s)
}

func decimalsFromInt(d int) (uint8, error) {
	if d < 0 || d > 255 {
		return 0, fmt.Errorf("decimals out of range: %d", d)
	}
	return uint8(d), nil
}
