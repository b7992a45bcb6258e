//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/ec"
	"github.com/pyperwallet/pyperwallet/format"
	"github.com/pyperwallet/pyperwallet/netparams"
	"golang.org/x/crypto/sha3"
)

const (
	checksumLen = 4
	hash160Len  = 20
	ethAddrLen  = 2 + 2*hash160Len

	compressMagic byte = 0x01
)

// family是一种地址算法族的实现，由netparams.Family选择。
type family interface {
	// wifFormat返回WIF的格式；该族的WIF与其他格式无法区分时为nil。
	wifFormat(p *netparams.Params) *format.Format
	addrFormat(p *netparams.Params) *format.Format

	// wifView与addrView决定字符串与字节间的转换。
	wifView() format.View
	addrView() format.View

	parseWIF(p *netparams.Params, s string) (bytedata.Data, error)
	parseAddr(p *netparams.Params, s string) (bytedata.Data, error)

	calcWIF(p *netparams.Params, priv bytedata.Data, compressed bool) bytedata.Data
	calcAddr(p *netparams.Params, kp *ec.KeyPair, compressed bool) (bytedata.Data, error)

	// decodeWIF校验WIF并取出私钥。压缩标志无法从WIF推断时
	// known为false。
	decodeWIF(p *netparams.Params, wif bytedata.Data) (priv bytedata.Data, compressed, known bool, err error)
	validateAddr(p *netparams.Params, addr bytedata.Data) error
}

func familyOf(p *netparams.Params) family {
	switch p.Family {
	case netparams.HexChecksum:
		return hexChecksum{}
	default:
		return utxo{}
	}
}

// base58Check在payload后追加SHA256d的前四个字节。
func base58Check(payload bytedata.Data) bytedata.Data {
	sum := chainhash.DoubleHashB(payload.Bytes())
	return payload.Concat(bytedata.New(sum[:checksumLen]))
}

// verifyChecksum校验base58check数据并返回去掉校验和的部分。
func verifyChecksum(d bytedata.Data) (bytedata.Data, error) {
	if d.Len() < checksumLen {
		return bytedata.Data{}, coinError(ErrInvalidCoin,
			"data too short for a checksum", nil)
	}
	body := d.SliceTo(-checksumLen)
	if !base58Check(body).Equal(d) {
		return bytedata.Data{}, coinError(ErrInvalidCoin,
			"base58 checksum failed", nil)
	}
	return body, nil
}

// utxo是比特币式算法族。
type utxo struct{}

func (utxo) wifView() format.View  { return format.Base58 }
func (utxo) addrView() format.View { return format.Base58 }

func (utxo) wifFormat(p *netparams.Params) *format.Format {
	l := len(p.WIFVersion) + ec.Secp256k1.KeySize() + checksumLen
	return format.New(FormatWIF, format.Base58, l, l+1).
		WithPrefixData(bytedata.New(p.WIFVersion))
}

func (utxo) addrFormat(p *netparams.Params) *format.Format {
	l := len(p.AddrVersion) + hash160Len + checksumLen
	return format.New(FormatAddr, format.Base58, l).
		WithPrefixData(bytedata.New(p.AddrVersion))
}

func (utxo) parseWIF(_ *netparams.Params, s string) (bytedata.Data, error) {
	d, err := bytedata.FromBase58(s)
	if err != nil {
		return bytedata.Data{}, coinError(ErrEncoding, "invalid WIF key "+s, err)
	}
	return d, nil
}

func (utxo) parseAddr(_ *netparams.Params, s string) (bytedata.Data, error) {
	d, err := bytedata.FromBase58(s)
	if err != nil {
		return bytedata.Data{}, coinError(ErrEncoding, "invalid address "+s, err)
	}
	return d, nil
}

func (utxo) calcWIF(p *netparams.Params, priv bytedata.Data, compressed bool) bytedata.Data {
	payload := bytedata.New(p.WIFVersion).Concat(priv)
	if compressed {
		payload = payload.Concat(bytedata.New([]byte{compressMagic}))
	}
	if !p.HasPrivCsum {
		return payload
	}
	return base58Check(payload)
}

func (utxo) calcAddr(p *netparams.Params, kp *ec.KeyPair, compressed bool) (bytedata.Data, error) {
	pub, ok := kp.Pub(compressed)
	if !ok {
		// 仅有压缩公钥的密钥对按未压缩设置使用时需要解压。
		c, _ := kp.PubCompressed()
		var err error
		pub, err = ec.Decompress(kp.Curve(), c)
		if err != nil {
			return bytedata.Data{}, coinError(ErrInvalidCoin, "bad public key", err)
		}
	}
	payload := bytedata.New(p.AddrVersion).
		Concat(bytedata.New(btcutil.Hash160(pub.Bytes())))
	if !p.HasAddrCsum {
		return payload, nil
	}
	return base58Check(payload), nil
}

func (utxo) decodeWIF(p *netparams.Params, wif bytedata.Data) (bytedata.Data, bool, bool, error) {
	body := wif
	if p.HasPrivCsum {
		var err error
		if body, err = verifyChecksum(wif); err != nil {
			return bytedata.Data{}, false, false, err
		}
	}
	if !body.HasPrefix(bytedata.New(p.WIFVersion)) {
		return bytedata.Data{}, false, false, coinError(ErrInvalidCoin,
			"WIF version mismatch for "+p.Name, nil)
	}
	payload := body.SliceFrom(len(p.WIFVersion))
	size := ec.Secp256k1.KeySize()
	switch {
	case payload.Len() == size:
		return payload, false, true, nil
	case payload.Len() == size+1 && payload.At(-1) == compressMagic:
		return payload.SliceTo(size), true, true, nil
	}
	return bytedata.Data{}, false, false, coinError(ErrInvalidCoin,
		"bad WIF payload length", nil)
}

func (utxo) validateAddr(p *netparams.Params, addr bytedata.Data) error {
	body := addr
	if p.HasAddrCsum {
		var err error
		if body, err = verifyChecksum(addr); err != nil {
			return err
		}
	}
	if !body.HasPrefix(bytedata.New(p.AddrVersion)) {
		return coinError(ErrInvalidCoin, "address version mismatch for "+p.Name, nil)
	}
	if body.Len() != len(p.AddrVersion)+hash160Len {
		return coinError(ErrInvalidCoin, "bad address length", nil)
	}
	return nil
}

// hexChecksum是以太坊式算法族。WIF与地址都以文本字节保存。
type hexChecksum struct{}

func (hexChecksum) wifView() format.View  { return format.Text }
func (hexChecksum) addrView() format.View { return format.Text }

// 该族的WIF就是十六进制私钥，由“private key”格式识别。
func (hexChecksum) wifFormat(*netparams.Params) *format.Format { return nil }

func (hexChecksum) addrFormat(*netparams.Params) *format.Format {
	return format.New(FormatAddr, format.Text, ethAddrLen).WithPrefix("3078")
}

func (hexChecksum) parseWIF(_ *netparams.Params, s string) (bytedata.Data, error) {
	priv, err := bytedata.FromHex(s)
	if err != nil {
		return bytedata.Data{}, coinError(ErrEncoding, "invalid WIF key "+s, err)
	}
	return bytedata.FromString(priv.Hex()), nil
}

func (hexChecksum) parseAddr(_ *netparams.Params, s string) (bytedata.Data, error) {
	if !isEthShape(s) {
		return bytedata.Data{}, coinError(ErrInvalidCoin, "malformed address "+s, nil)
	}
	return bytedata.FromString(s), nil
}

func isEthShape(s string) bool {
	if len(s) != ethAddrLen || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

func (hexChecksum) calcWIF(_ *netparams.Params, priv bytedata.Data, _ bool) bytedata.Data {
	return bytedata.FromString(priv.Hex())
}

func (hexChecksum) calcAddr(_ *netparams.Params, kp *ec.KeyPair, _ bool) (bytedata.Data, error) {
	pub, ok := kp.PubUncompressed()
	if !ok {
		c, _ := kp.PubCompressed()
		var err error
		pub, err = ec.Decompress(kp.Curve(), c)
		if err != nil {
			return bytedata.Data{}, coinError(ErrInvalidCoin, "bad public key", err)
		}
	}
	h := keccak256(pub.SliceFrom(1).Bytes())
	return bytedata.FromString(checksumCase(hex.EncodeToString(h[len(h)-hash160Len:]))), nil
}

func (hexChecksum) decodeWIF(p *netparams.Params, wif bytedata.Data) (bytedata.Data, bool, bool, error) {
	s, err := wif.Text()
	if err != nil {
		return bytedata.Data{}, false, false, coinError(ErrInvalidCoin, "bad WIF text", err)
	}
	priv, err := bytedata.FromHex(s)
	if err != nil {
		return bytedata.Data{}, false, false, coinError(ErrInvalidCoin, "bad WIF key", err)
	}
	return priv, false, false, nil
}

func (hexChecksum) validateAddr(_ *netparams.Params, addr bytedata.Data) error {
	s, err := addr.Text()
	if err != nil || !isEthShape(s) {
		return coinError(ErrInvalidCoin, "malformed address", err)
	}
	if checksumCase(s[2:]) != s {
		return coinError(ErrInvalidCoin, "address checksum failed", nil)
	}
	return nil
}

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// checksumCase对40位十六进制地址做大小写校验编码并加上0x前缀。
// 小写地址的Keccak-256哈希中对应半字节不小于8的字母转为大写。
func checksumCase(addrHex string) string {
	lower := strings.ToLower(addrHex)
	sum := hex.EncodeToString(keccak256([]byte(lower)))

	var b bytes.Buffer
	b.WriteString("0x")
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && sum[i] >= '8' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
