//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package ec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/internal/zero"
)

// 公钥前缀。
const (
	PubKeyCompressedEven byte = 0x02
	PubKeyCompressedOdd  byte = 0x03
	PubKeyUncompressed   byte = 0x04
)

var (
	// ErrInvalidPrivateKey表示私钥长度错误、为零或不小于群的阶。
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey表示公钥的长度、前缀或曲线点无效。
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrUnknownCurve表示不支持的曲线名称。
	ErrUnknownCurve = errors.New("unknown curve")
)

// Curve标识一条椭圆曲线。
type Curve int

const (
	// Secp256k1是比特币系网络使用的曲线。
	Secp256k1 Curve = iota
)

// KeySize返回私钥与坐标的字节宽度。
func (c Curve) KeySize() int {
	switch c {
	case Secp256k1:
		return btcec.PrivKeyBytesLen
	}
	return 0
}

// String返回曲线名称。
func (c Curve) String() string {
	switch c {
	case Secp256k1:
		return "secp256k1"
	}
	return fmt.Sprintf("Unknown Curve (%d)", int(c))
}

// ParseCurve按名称查找曲线，忽略大小写。
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(name) {
	case "secp256k1":
		return Secp256k1, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCurve, name)
}

// KeyPair保存一组私钥与公钥编码。创建后不可变，Zero除外。
type KeyPair struct {
	curve Curve
	priv  []byte // 仅有公钥时为nil
	pubU  []byte // 仅有压缩公钥时为nil
	pubC  []byte
}

// Generate随机生成密钥对。编码后首字节为零的私钥会被丢弃重抽，
// 因为部分网络的字符串编码不允许这种私钥。
func Generate(c Curve) (*KeyPair, error) {
	if c != Secp256k1 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurve, c)
	}
	for {
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, err
		}
		b := priv.Serialize()
		if b[0] == 0 {
			priv.Zero()
			continue
		}
		kp := fromKey(c, priv)
		priv.Zero()
		return kp, nil
	}
}

// FromPrivate通过生成元的标量乘法从私钥推导公钥。
func FromPrivate(c Curve, priv bytedata.Data) (*KeyPair, error) {
	if c != Secp256k1 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurve, c)
	}
	if priv.Len() != c.KeySize() {
		return nil, fmt.Errorf("%w: length %d, want %d",
			ErrInvalidPrivateKey, priv.Len(), c.KeySize())
	}

	b := priv.Bytes()
	defer zero.Bytes(b)

	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return nil, fmt.Errorf("%w: out of range", ErrInvalidPrivateKey)
	}
	key := btcec.PrivKeyFromScalar(&s)
	kp := fromKey(c, key)
	key.Zero()
	return kp, nil
}

func fromKey(c Curve, key *btcec.PrivateKey) *KeyPair {
	pub := key.PubKey()
	return &KeyPair{
		curve: c,
		priv:  key.Serialize(),
		pubU:  pub.SerializeUncompressed(),
		pubC:  pub.SerializeCompressed(),
	}
}

// FromPublic从公钥创建仅含公钥的密钥对。未压缩公钥同时保存两种编码；
// 压缩公钥只保存压缩编码。
func FromPublic(c Curve, pub bytedata.Data) (*KeyPair, error) {
	if c != Secp256k1 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurve, c)
	}
	b := pub.Bytes()
	if err := checkPubShape(c, b); err != nil {
		return nil, err
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	kp := &KeyPair{curve: c}
	if b[0] == PubKeyUncompressed {
		kp.pubU = b
		kp.pubC = key.SerializeCompressed()
	} else {
		kp.pubC = b
	}
	return kp, nil
}

func checkPubShape(c Curve, b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPublicKey)
	}
	size := c.KeySize()
	switch b[0] {
	case PubKeyUncompressed:
		if len(b) == 2*size+1 {
			return nil
		}
	case PubKeyCompressedEven, PubKeyCompressedOdd:
		if len(b) == size+1 {
			return nil
		}
	default:
		return fmt.Errorf("%w: prefix %02x", ErrInvalidPublicKey, b[0])
	}
	return fmt.Errorf("%w: length %d for prefix %02x",
		ErrInvalidPublicKey, len(b), b[0])
}

// Decompress返回任意有效公钥的未压缩编码。
func Decompress(c Curve, pub bytedata.Data) (bytedata.Data, error) {
	b := pub.Bytes()
	if err := checkPubShape(c, b); err != nil {
		return bytedata.Data{}, err
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return bytedata.Data{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return bytedata.New(key.SerializeUncompressed()), nil
}

// IsCompressed报告公钥是否为压缩编码。
func IsCompressed(pub bytedata.Data) bool {
	return pub.Len() > 0 && pub.At(0) != PubKeyUncompressed
}

// Curve返回密钥对所在曲线。
func (k *KeyPair) Curve() Curve {
	return k.curve
}

// HasPrivate报告是否持有私钥。
func (k *KeyPair) HasPrivate() bool {
	return k.priv != nil
}

// Priv返回私钥。
func (k *KeyPair) Priv() (bytedata.Data, bool) {
	if k.priv == nil {
		return bytedata.Data{}, false
	}
	return bytedata.New(k.priv), true
}

// PubUncompressed返回0x04‖X‖Y编码。
func (k *KeyPair) PubUncompressed() (bytedata.Data, bool) {
	if k.pubU == nil {
		return bytedata.Data{}, false
	}
	return bytedata.New(k.pubU), true
}

// PubCompressed返回0x02/0x03‖X编码。
func (k *KeyPair) PubCompressed() (bytedata.Data, bool) {
	if k.pubC == nil {
		return bytedata.Data{}, false
	}
	return bytedata.New(k.pubC), true
}

// Pub按压缩设置返回公钥。
func (k *KeyPair) Pub(compressed bool) (bytedata.Data, bool) {
	if compressed {
		return k.PubCompressed()
	}
	return k.PubUncompressed()
}

// Zero清除私钥字节。之后密钥对不再持有私钥。
func (k *KeyPair) Zero() {
	if k.priv != nil {
		zero.Bytes(k.priv)
		k.priv = nil
	}
}
