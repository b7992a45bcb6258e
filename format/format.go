//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package format

import (
	"fmt"

	"github.com/pyperwallet/pyperwallet/bytedata"
)

// View是格式声明的字节视图类型，决定如何把输入字符串转换为字节。
type View int

const (
	// Raw直接取字符串的字节，不做解码。
	Raw View = iota

	// Hex按十六进制解码。
	Hex

	// Base58按base58解码。
	Base58

	// Text按UTF-8文本取字节，与Raw相同但语义上是可显示字符串。
	Text
)

var viewStrings = map[View]string{
	Raw:    "raw",
	Hex:    "hex",
	Base58: "base58",
	Text:   "text",
}

// String返回视图名称。
func (v View) String() string {
	if s := viewStrings[v]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown View (%d)", int(v))
}

// Decode把s转换为该视图下的字节。
func (v View) Decode(s string) (bytedata.Data, error) {
	switch v {
	case Hex:
		return bytedata.FromHex(s)
	case Base58:
		return bytedata.FromBase58(s)
	case Raw, Text:
		return bytedata.FromString(s), nil
	}
	return bytedata.Data{}, fmt.Errorf("unknown view %v", v)
}

// Encode是Decode的逆操作。Raw与Text视图下无效的UTF-8按原字节输出。
func (v View) Encode(d bytedata.Data) string {
	switch v {
	case Hex:
		return d.Hex()
	case Base58:
		return d.Base58()
	}
	return string(d.Bytes())
}

// Matcher是可被AutoDetector检测的格式。
type Matcher interface {
	Name() string
	Match(input string) bool
	CryptorName() string
}

// Format是声明式的数据格式：名称、视图、可接受的长度、前缀与后缀。
// 构造完成后无状态，可在多次检测中复用。
type Format struct {
	name     string
	view     View
	lengths  []int
	prefixes []bytedata.Data
	suffixes []bytedata.Data
	cryptor  string
}

// New创建格式。lengths为空时不限制长度。
func New(name string, view View, lengths ...int) *Format {
	return &Format{name: name, view: view, lengths: lengths}
}

// WithPrefix追加以十六进制给出的可接受前缀。无效的十六进制会panic，
// 因为格式是在初始化时声明的常量。
func (f *Format) WithPrefix(hexes ...string) *Format {
	f.prefixes = append(f.prefixes, mustHex(hexes)...)
	return f
}

// WithPrefixData追加可接受前缀。
func (f *Format) WithPrefixData(ds ...bytedata.Data) *Format {
	f.prefixes = append(f.prefixes, ds...)
	return f
}

// WithSuffix追加以十六进制给出的可接受后缀。
func (f *Format) WithSuffix(hexes ...string) *Format {
	f.suffixes = append(f.suffixes, mustHex(hexes)...)
	return f
}

// WithCryptor把格式关联到加密器，用于加密后的WIF。
func (f *Format) WithCryptor(name string) *Format {
	f.cryptor = name
	return f
}

func mustHex(hexes []string) []bytedata.Data {
	out := make([]bytedata.Data, 0, len(hexes))
	for _, h := range hexes {
		d, err := bytedata.FromHex(h)
		if err != nil {
			panic(fmt.Sprintf("format: bad hex constant %q: %v", h, err))
		}
		out = append(out, d)
	}
	return out
}

// Name返回格式名称。
func (f *Format) Name() string { return f.name }

// View返回格式的字节视图。
func (f *Format) View() View { return f.view }

// CryptorName返回关联的加密器名称，未加密格式为空。
func (f *Format) CryptorName() string { return f.cryptor }

// Match报告input是否符合该格式。无法按视图解码视为不匹配。
func (f *Format) Match(input string) bool {
	d, err := f.view.Decode(input)
	if err != nil {
		return false
	}
	return f.MatchData(d)
}

// MatchData对已解码的数据执行长度、前缀与后缀检查。
func (f *Format) MatchData(d bytedata.Data) bool {
	if len(f.lengths) > 0 {
		ok := false
		for _, l := range f.lengths {
			if d.Len() == l {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(f.prefixes) > 0 && !anyOf(f.prefixes, d.HasPrefix) {
		return false
	}
	if len(f.suffixes) > 0 && !anyOf(f.suffixes, d.HasSuffix) {
		return false
	}
	return true
}

func anyOf(ds []bytedata.Data, pred func(bytedata.Data) bool) bool {
	for _, d := range ds {
		if pred(d) {
			return true
		}
	}
	return false
}

// CombinationError表示组合了名称或视图不同的格式。
type CombinationError struct {
	First, Other string
}

// Error满足error接口。
func (e *CombinationError) Error() string {
	return "formats " + e.First + " and " + e.Other + " are not compatible"
}

// Combined是多个同名同视图格式的并集。
type Combined struct {
	formats []*Format
}

// Combine创建格式并集。所有格式必须同名且同视图。
func Combine(formats ...*Format) (*Combined, error) {
	if len(formats) == 0 {
		return nil, &CombinationError{}
	}
	first := formats[0]
	for _, f := range formats[1:] {
		if f.name != first.name || f.view != first.view {
			return nil, &CombinationError{
				First: first.name + "/" + first.view.String(),
				Other: f.name + "/" + f.view.String(),
			}
		}
	}
	return &Combined{formats: formats}, nil
}

// Name返回共同的格式名称。
func (c *Combined) Name() string { return c.formats[0].name }

// CryptorName对组合格式总为空。
func (c *Combined) CryptorName() string { return "" }

// Match报告任一成员格式是否匹配。
func (c *Combined) Match(input string) bool {
	d, err := c.formats[0].view.Decode(input)
	if err != nil {
		return false
	}
	for _, f := range c.formats {
		if f.MatchData(d) {
			return true
		}
	}
	return false
}
