//版权所有（c）2014-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

// Package bip38实现非EC乘法模式的BIP38私钥加密。
//
// 密文格式为：
//
//	0x01 0x42 <flag> <addrhash:4> <encrypted1:16> <encrypted2:16> <checksum:4>
//
// 其中addrhash是地址字符串的SHA256d的前四个字节，同时用作
// scrypt的盐。
package bip38

import (
	"crypto/aes"
	"runtime/debug"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/coin"
	"github.com/pyperwallet/pyperwallet/format"
	"github.com/pyperwallet/pyperwallet/internal/zero"
	"github.com/pyperwallet/pyperwallet/netparams"
	"golang.org/x/crypto/scrypt"
)

// Name是写入硬币加密类型的标识。
const Name = "bip38"

// 加密方案所需的各种常量。
const (
	N      = 16384 // 2^14
	R      = 8
	P      = 8
	KeyLen = 64

	AddrHashLen = 4
	Len         = 43

	FlagCompressed   byte = 0xe0
	FlagUncompressed byte = 0xc0
)

var magic = []byte{0x01, 0x42}

// Cryptor是BIP38加密器，满足coin.Cryptor接口。零值可直接使用。
type Cryptor struct{}

// New返回BIP38加密器。
func New() *Cryptor {
	return &Cryptor{}
}

// Name返回"bip38"。
func (*Cryptor) Name() string {
	return Name
}

// Format返回密文格式：43字节的base58数据，前缀0142。
func (*Cryptor) Format(*netparams.Params) *format.Format {
	return format.New("encrypted WIF key", format.Base58, Len).
		WithPrefix("0142").WithCryptor(Name)
}

// addrHash返回地址字符串SHA256d的前四个字节。
func addrHash(addr string) []byte {
	return chainhash.DoubleHashB([]byte(addr))[:AddrHashLen]
}

// deriveKey返回scrypt派生的64字节密钥。
func deriveKey(passphrase, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(passphrase, salt, N, R, P, KeyLen)
	if err != nil {
		return nil, err
	}

	// scrypt会分配大量内存，连续调用时先归还给操作系统。
	debug.FreeOSMemory()

	return key, nil
}

// Encrypt加密c的私钥。
func (*Cryptor) Encrypt(c *coin.Coin, passphrase []byte) (bytedata.Data, error) {
	kp := c.KeyPair()
	if kp == nil || !kp.HasPrivate() {
		return bytedata.Data{}, coin.Error{
			ErrorCode:   coin.ErrNoPrivateKey,
			Description: "bip38 needs a private key",
		}
	}
	privData, _ := kp.Priv()
	priv := privData.Bytes()
	defer zero.Bytes(priv)

	salt := addrHash(c.AddrString())
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return bytedata.Data{}, err
	}
	defer zero.Bytes(key)

	block, err := aes.NewCipher(key[32:])
	if err != nil {
		return bytedata.Data{}, err
	}

	var buf [32]byte
	defer zero.Bytea32(&buf)
	for i := range buf {
		buf[i] = priv[i] ^ key[i]
	}
	// 两个16字节分组各自独立加密（ECB）。
	block.Encrypt(buf[:16], buf[:16])
	block.Encrypt(buf[16:], buf[16:])

	flag := FlagUncompressed
	if c.Settings().Compressed {
		flag = FlagCompressed
	}

	out := make([]byte, 0, Len)
	out = append(out, magic...)
	out = append(out, flag)
	out = append(out, salt...)
	out = append(out, buf[:]...)
	sum := chainhash.DoubleHashB(out)
	out = append(out, sum[:4]...)

	log.Debugf("Encrypted %s key", c.Params().Name)
	return bytedata.New(out), nil
}

// ciphertext是拆分后的密文字段。
type ciphertext struct {
	compressed bool
	salt       []byte
	encrypted  []byte
}

// parse检查密文的长度、校验和、前缀与标志并拆分字段。
func parse(ct bytedata.Data) (*ciphertext, error) {
	b := ct.Bytes()
	if len(b) != Len {
		return nil, invalid("bad ciphertext length")
	}
	body, sum := b[:Len-4], b[Len-4:]
	if !bytedata.New(chainhash.DoubleHashB(body)[:4]).Equal(bytedata.New(sum)) {
		return nil, invalid("bad ciphertext checksum")
	}
	if body[0] != magic[0] || body[1] != magic[1] {
		return nil, invalid("bad ciphertext prefix")
	}

	out := &ciphertext{
		salt:      body[3 : 3+AddrHashLen],
		encrypted: body[3+AddrHashLen:],
	}
	switch body[2] {
	case FlagCompressed:
		out.compressed = true
	case FlagUncompressed:
	default:
		return nil, invalid("unsupported bip38 flag")
	}
	return out, nil
}

// Validate检查密文结构与校验和，不需要口令。
func (*Cryptor) Validate(_ *netparams.Params, ct bytedata.Data) error {
	_, err := parse(ct)
	return err
}

// Decrypt解密c中的密文，返回明文硬币。口令错误时返回
// coin.ErrDecryptionUnsuccessful。
func (*Cryptor) Decrypt(c *coin.Coin, passphrase []byte) (*coin.Coin, error) {
	wif, ok := c.WIF()
	if !ok {
		return nil, invalid("no ciphertext")
	}
	ct, err := parse(wif)
	if err != nil {
		return nil, err
	}
	salt, encrypted, compressed := ct.salt, ct.encrypted, ct.compressed

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(key)

	block, err := aes.NewCipher(key[32:])
	if err != nil {
		return nil, err
	}

	var buf [32]byte
	defer zero.Bytea32(&buf)
	block.Decrypt(buf[:16], encrypted[:16])
	block.Decrypt(buf[16:], encrypted[16:])
	for i := range buf {
		buf[i] ^= key[i]
	}

	plain, err := c.Derive(bytedata.New(buf[:]), compressed)
	if err != nil {
		// 错误口令得到的标量可能超出范围。
		log.Debugf("Decrypted scalar rejected: %v", err)
		return nil, incorrect()
	}
	if !bytedata.New(addrHash(plain.AddrString())).Equal(bytedata.New(salt)) {
		plain.KeyPair().Zero()
		return nil, incorrect()
	}
	return plain, nil
}

func invalid(desc string) error {
	return coin.Error{ErrorCode: coin.ErrInvalidCoin, Description: desc}
}

func incorrect() error {
	return coin.Error{
		ErrorCode:   coin.ErrDecryptionUnsuccessful,
		Description: "password incorrect",
	}
}
