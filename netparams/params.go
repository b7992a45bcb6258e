//版权所有（c）2013-2015 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package netparams

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pyperwallet/pyperwallet/ec"
)

// Family选择网络使用的地址算法族。
type Family int

const (
	// UTXO是比特币式网络：base58check编码的WIF与Hash160地址。
	UTXO Family = iota

	// HexChecksum是以太坊式网络：大小写校验的十六进制地址。
	HexChecksum
)

// String返回算法族名称。
func (f Family) String() string {
	switch f {
	case UTXO:
		return "utxo"
	case HexChecksum:
		return "hexchecksum"
	}
	return fmt.Sprintf("Unknown Family (%d)", int(f))
}

// Params用于对单个网络的参数进行分组。
type Params struct {
	Name   string
	Ticker string
	Curve  ec.Curve
	Family Family

	WIFVersion  []byte
	AddrVersion []byte

	HasPrivCsum  bool
	HasAddrCsum  bool
	HasPrivacy   bool
	LoadFromAddr bool

	// Chain在btcd已知的网络上设置，否则为nil。
	Chain *chaincfg.Params
}

// String返回网络名称。
func (p *Params) String() string {
	return p.Name
}

// Key返回注册表使用的规范化名称。
func (p *Params) Key() string {
	return Normalize(p.Name)
}

// Normalize把名称转换为只含小写字母与数字的形式。
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ErrDuplicateNet表示名称或代号已被注册。
var ErrDuplicateNet = errors.New("duplicate network")

// ErrUnknownNet表示注册表中没有该网络。
var ErrUnknownNet = errors.New("unknown network")

var (
	registered = make(map[string]*Params)
	byTicker   = make(map[string]*Params)
)

// Register把网络加入注册表。规范化名称或代号与已有网络冲突时返回
// ErrDuplicateNet。
func Register(p *Params) error {
	name := p.Key()
	ticker := Normalize(p.Ticker)
	if name == "" {
		return fmt.Errorf("network %q has an empty name", p.Name)
	}
	if taken(name) || (ticker != "" && taken(ticker)) {
		return fmt.Errorf("%w: %s", ErrDuplicateNet, p.Name)
	}
	registered[name] = p
	if ticker != "" {
		byTicker[ticker] = p
	}
	return nil
}

func taken(key string) bool {
	_, a := registered[key]
	_, b := byTicker[key]
	return a || b
}

// Lookup按规范化名称或代号查找网络。
func Lookup(name string) (*Params, error) {
	key := Normalize(name)
	if p, ok := registered[key]; ok {
		return p, nil
	}
	if p, ok := byTicker[key]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownNet, name)
}

// Names返回所有已注册网络的规范化名称，按字母排序。
func Names() []string {
	names := make([]string, 0, len(registered))
	for n := range registered {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All按规范化名称顺序返回所有已注册网络。
func All() []*Params {
	names := Names()
	out := make([]*Params, len(names))
	for i, n := range names {
		out[i] = registered[n]
	}
	return out
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("netparams: bad version %q: %v", s, err))
	}
	return b
}

// utxo创建比特币式网络的参数。
func utxo(name, ticker, addr, wif string) *Params {
	return &Params{
		Name:         name,
		Ticker:       ticker,
		Curve:        ec.Secp256k1,
		Family:       UTXO,
		WIFVersion:   mustHex(wif),
		AddrVersion:  mustHex(addr),
		HasPrivCsum:  true,
		HasAddrCsum:  true,
		LoadFromAddr: true,
	}
}

// fromChain从btcd的链参数中取版本字节。
func fromChain(name, ticker string, chain *chaincfg.Params) *Params {
	p := utxo(name, ticker, "", "")
	p.WIFVersion = []byte{chain.PrivateKeyID}
	p.AddrVersion = []byte{chain.PubKeyHashAddrID}
	p.Chain = chain
	return p
}

// 专用网络。
var (
	BitcoinParams     = fromChain("Bitcoin", "btc", &chaincfg.MainNetParams)
	TestNet3Params    = fromChain("Bitcoin Testnet", "test", &chaincfg.TestNet3Params)
	LitecoinParams    = utxo("Litecoin", "ltc", "30", "b0")
	BitcoinCashParams = utxo("Bitcoin Cash", "bch", "00", "80")
	DashParams        = utxo("Dash", "dash", "4c", "cc")
	DogecoinParams    = utxo("Dogecoin", "doge", "1e", "9e")
	FeathercoinParams = utxo("Feathercoin", "ftc", "0e", "8e")
	VertcoinParams    = utxo("Vertcoin", "vtc", "47", "80")
	ZCashParams       = utxo("ZCash", "zec", "1cb8", "80")

	EthereumParams = &Params{
		Name:         "Ethereum",
		Ticker:       "eth",
		Curve:        ec.Secp256k1,
		Family:       HexChecksum,
		HasAddrCsum:  true,
		LoadFromAddr: true,
	}
)

func init() {
	dedicated := []*Params{
		BitcoinParams, TestNet3Params, LitecoinParams, BitcoinCashParams,
		DashParams, DogecoinParams, FeathercoinParams, VertcoinParams,
		ZCashParams, EthereumParams,
	}
	for _, p := range dedicated {
		if err := Register(p); err != nil {
			panic(err)
		}
	}

	// 表中与专用网络重名或同代号的条目被跳过。
	for _, a := range altcoins {
		err := Register(utxo(a.name, a.ticker, a.addr, a.wif))
		if err != nil && !errors.Is(err, ErrDuplicateNet) {
			panic(err)
		}
	}
}
