//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package bytedata

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

// Alphabet是比特币使用的base58字母表。
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodingError描述无法解析的十六进制、base58或UTF-8输入。
type EncodingError struct {
	Encoding    string // hex、base58或utf-8
	Description string
}

// Error满足error接口。
func (e *EncodingError) Error() string {
	return e.Encoding + ": " + e.Description
}

// Data是不可变的字节序列。所有视图都只由字节内容决定。
//
// 零值是空序列。
type Data struct {
	b []byte
}

// New复制b并返回对应的Data。
func New(b []byte) Data {
	return Data{b: append([]byte(nil), b...)}
}

// FromHex解析大小写均可的十六进制字符串。
func FromHex(s string) (Data, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Data{}, &EncodingError{Encoding: "hex", Description: err.Error()}
	}
	return Data{b: b}, nil
}

// FromBase58解析base58字符串。每个前导的“1”还原为一个零字节。
func FromBase58(s string) (Data, error) {
	if s == "" {
		return Data{}, nil
	}
	if i := strings.IndexFunc(s, notBase58); i >= 0 {
		r, _ := utf8.DecodeRuneInString(s[i:])
		return Data{}, &EncodingError{
			Encoding:    "base58",
			Description: "invalid character " + string(r) + " in " + s,
		}
	}
	b, err := base58.Decode(s)
	if err != nil {
		return Data{}, &EncodingError{Encoding: "base58", Description: err.Error()}
	}
	return Data{b: b}, nil
}

func notBase58(r rune) bool {
	return !strings.ContainsRune(Alphabet, r)
}

// FromUint返回v的大端编码，左侧补零至至少width字节。
// v必须非负。
func FromUint(v *big.Int, width int) Data {
	b := v.Bytes()
	if len(b) >= width {
		return Data{b: b}
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return Data{b: out}
}

// FromUint64与FromUint相同，但接受uint64。
func FromUint64(v uint64, width int) Data {
	return FromUint(new(big.Int).SetUint64(v), width)
}

// FromString返回s的UTF-8字节。
func FromString(s string) Data {
	return Data{b: []byte(s)}
}

// Bytes返回底层字节的副本。
func (d Data) Bytes() []byte {
	return append([]byte(nil), d.b...)
}

// Len返回字节长度。
func (d Data) Len() int {
	return len(d.b)
}

// Hex返回小写十六进制视图。
func (d Data) Hex() string {
	return hex.EncodeToString(d.b)
}

// Base58返回base58视图。
func (d Data) Base58() string {
	if len(d.b) == 0 {
		return ""
	}
	return base58.Encode(d.b)
}

// Uint返回大端无符号整数视图。
func (d Data) Uint() *big.Int {
	return new(big.Int).SetBytes(d.b)
}

// Text返回UTF-8字符串视图。
func (d Data) Text() (string, error) {
	if !utf8.Valid(d.b) {
		return "", &EncodingError{Encoding: "utf-8", Description: "invalid byte sequence " + d.Hex()}
	}
	return string(d.b), nil
}

// String以十六进制输出，供fmt使用。
func (d Data) String() string {
	return d.Hex()
}

// Equal仅比较字节内容。
func (d Data) Equal(o Data) bool {
	return bytes.Equal(d.b, o.b)
}

// Key返回可作为map键的内容标识。
func (d Data) Key() string {
	return string(d.b)
}

// Concat按顺序拼接d与others。
func (d Data) Concat(others ...Data) Data {
	n := len(d.b)
	for _, o := range others {
		n += len(o.b)
	}
	out := make([]byte, 0, n)
	out = append(out, d.b...)
	for _, o := range others {
		out = append(out, o.b...)
	}
	return Data{b: out}
}

// At返回第i个字节，负数从末尾计。越界会panic，与切片下标一致。
func (d Data) At(i int) byte {
	if i < 0 {
		i += len(d.b)
	}
	return d.b[i]
}

// Slice返回[i, j)区间。负数下标从末尾计，越界下标被截断。
func (d Data) Slice(i, j int) Data {
	i, j = d.clamp(i), d.clamp(j)
	if i >= j {
		return Data{}
	}
	return New(d.b[i:j])
}

// SliceFrom返回从i到末尾的部分。
func (d Data) SliceFrom(i int) Data {
	return d.Slice(i, len(d.b))
}

// SliceTo返回从开头到j（不含）的部分。
func (d Data) SliceTo(j int) Data {
	return d.Slice(0, j)
}

func (d Data) clamp(i int) int {
	n := len(d.b)
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// Reverse返回字节逆序后的副本。
func (d Data) Reverse() Data {
	out := make([]byte, len(d.b))
	for i, c := range d.b {
		out[len(d.b)-1-i] = c
	}
	return Data{b: out}
}

// HasPrefix报告p是否为d的字节前缀。
func (d Data) HasPrefix(p Data) bool {
	return bytes.HasPrefix(d.b, p.b)
}

// HasSuffix报告s是否为d的字节后缀。
func (d Data) HasSuffix(s Data) bool {
	return bytes.HasSuffix(d.b, s.b)
}
