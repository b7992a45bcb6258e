//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/ec"
	"github.com/pyperwallet/pyperwallet/format"
	"github.com/pyperwallet/pyperwallet/netparams"
)

// Coin是单个网络上的一组密钥材料：密钥对、WIF、查看密钥与地址，
// 每项都可能缺失。
//
// 已加密的硬币不持有密钥对，WIF字段保存密文。未加密时，存在的每个
// 字段都通过网络的校验规则，并且可由密钥对推导。构造失败时不返回
// 硬币。
//
// Coin不支持并发修改。
type Coin struct {
	params   *netparams.Params
	settings Settings
	family   family

	keyPair *ec.KeyPair
	wif     *bytedata.Data
	view    *bytedata.Data
	addr    *bytedata.Data

	cryptType string
}

func newCoin(p *netparams.Params, s Settings) *Coin {
	return &Coin{params: p, settings: s, family: familyOf(p)}
}

// Generate生成新的随机密钥。
func Generate(p *netparams.Params, s Settings) (*Coin, error) {
	kp, err := ec.Generate(p.Curve)
	if err != nil {
		return nil, err
	}
	c := newCoin(p, s)
	return c.loadKeyPair(kp)
}

// FromPrivate从原始私钥创建硬币。
func FromPrivate(p *netparams.Params, priv bytedata.Data, s Settings) (*Coin, error) {
	kp, err := ec.FromPrivate(p.Curve, priv)
	if err != nil {
		return nil, coinError(ErrInvalidCoin, "invalid private key", err)
	}
	c := newCoin(p, s)
	return c.loadKeyPair(kp)
}

// FromPublic从公钥创建只含公开数据的硬币。压缩设置由公钥前缀决定。
func FromPublic(p *netparams.Params, pub bytedata.Data, s Settings) (*Coin, error) {
	kp, err := ec.FromPublic(p.Curve, pub)
	if err != nil {
		return nil, coinError(ErrInvalidCoin, "invalid public key", err)
	}
	s.Compressed = ec.IsCompressed(pub)
	c := newCoin(p, s)
	return c.loadKeyPair(kp)
}

// FromWIF从WIF创建硬币。能从WIF推断时，压缩设置取自WIF。
func FromWIF(p *netparams.Params, wif bytedata.Data, s Settings) (*Coin, error) {
	f := familyOf(p)
	priv, compressed, known, err := f.decodeWIF(p, wif)
	if err != nil {
		return nil, err
	}
	if known {
		s.Compressed = compressed
	}
	kp, err := ec.FromPrivate(p.Curve, priv)
	if err != nil {
		return nil, coinError(ErrInvalidCoin, "invalid private key in WIF", err)
	}
	c := newCoin(p, s)
	c.keyPair = kp
	c.wif = &wif
	if err := c.calcAll(); err != nil {
		return nil, err
	}
	return c.validated()
}

// FromView从查看密钥创建硬币。只有隐私网络支持。
func FromView(p *netparams.Params, view bytedata.Data, s Settings) (*Coin, error) {
	if !p.HasPrivacy {
		return nil, coinError(ErrNotImplemented,
			p.Name+" has no view keys", nil)
	}
	return nil, coinError(ErrNotImplemented,
		"view keys are not supported by the "+p.Family.String()+" family", nil)
}

// FromAddr创建只含地址的硬币。
func FromAddr(p *netparams.Params, addr bytedata.Data, s Settings) (*Coin, error) {
	if !p.LoadFromAddr {
		return nil, coinError(ErrNotImplemented,
			p.Name+" cannot be loaded from an address", nil)
	}
	c := newCoin(p, s)
	c.addr = &addr
	return c.validated()
}

// FromEncrypted从密文创建已加密的硬币。设置中必须有加密器，
// 且密文符合其格式。
func FromEncrypted(p *netparams.Params, ciphertext bytedata.Data, s Settings) (*Coin, error) {
	if s.Cryptor == nil {
		return nil, coinError(ErrNoCryptor, "no cryptor to load encrypted key", nil)
	}
	c := newCoin(p, s)
	c.wif = &ciphertext
	c.cryptType = s.Cryptor.Name()
	return c.validated()
}

// loadKeyPair保存密钥对并计算所有可推导的字段。
func (c *Coin) loadKeyPair(kp *ec.KeyPair) (*Coin, error) {
	c.keyPair = kp
	if err := c.calcAll(); err != nil {
		return nil, err
	}
	return c.validated()
}

// calcAll由密钥对推导缺失的字段。
func (c *Coin) calcAll() error {
	if c.keyPair == nil {
		return nil
	}
	if priv, ok := c.keyPair.Priv(); ok && c.wif == nil {
		wif := c.family.calcWIF(c.params, priv, c.settings.Compressed)
		c.wif = &wif
	}
	if c.addr == nil {
		addr, err := c.family.calcAddr(c.params, c.keyPair, c.settings.Compressed)
		if err != nil {
			return err
		}
		c.addr = &addr
	}
	return nil
}

func (c *Coin) validated() (*Coin, error) {
	if err := c.validateAll(); err != nil {
		return nil, err
	}
	return c, nil
}

// validateAll校验每个存在的字段。
func (c *Coin) validateAll() error {
	if c.cryptType != "" {
		if c.keyPair != nil {
			return coinError(ErrInvalidCoin, "encrypted coin holds a key pair", nil)
		}
		if c.wif == nil || c.settings.Cryptor == nil ||
			!c.settings.Cryptor.Format(c.params).MatchData(*c.wif) {
			return coinError(ErrInvalidCoin, "ciphertext does not match the "+
				c.cryptType+" format", nil)
		}
		if err := c.settings.Cryptor.Validate(c.params, *c.wif); err != nil {
			if IsError(err, ErrInvalidCoin) {
				return err
			}
			return coinError(ErrInvalidCoin, "invalid "+c.cryptType+" ciphertext", err)
		}
	} else if c.wif != nil {
		if _, _, _, err := c.family.decodeWIF(c.params, *c.wif); err != nil {
			return err
		}
		if c.keyPair != nil {
			priv, ok := c.keyPair.Priv()
			if !ok {
				return coinError(ErrInvalidCoin, "WIF without a private key", nil)
			}
			want := c.family.calcWIF(c.params, priv, c.settings.Compressed)
			if !want.Equal(*c.wif) {
				return coinError(ErrInvalidCoin, "WIF does not match the private key", nil)
			}
		}
	}

	if c.view != nil && !c.params.HasPrivacy {
		return coinError(ErrInvalidCoin, c.params.Name+" has no view keys", nil)
	}

	if c.addr != nil {
		if err := c.family.validateAddr(c.params, *c.addr); err != nil {
			return err
		}
		if c.keyPair != nil {
			want, err := c.family.calcAddr(c.params, c.keyPair, c.settings.Compressed)
			if err != nil {
				return err
			}
			if !want.Equal(*c.addr) {
				return coinError(ErrInvalidCoin, "address does not match the key", nil)
			}
		}
	}
	return nil
}

// Encrypt用当前加密器加密私钥。成功后WIF保存密文，密钥对被清除。
func (c *Coin) Encrypt(passphrase []byte) error {
	if c.cryptType != "" {
		return coinError(ErrAlreadyEncrypted, "coin is already encrypted with "+
			c.cryptType, nil)
	}
	cr := c.settings.Cryptor
	if cr == nil {
		return coinError(ErrNoCryptor, "no cryptor in settings", nil)
	}
	if c.keyPair == nil || !c.keyPair.HasPrivate() {
		return coinError(ErrNoPrivateKey, "coin has no private key to encrypt", nil)
	}

	ct, err := cr.Encrypt(c, passphrase)
	if err != nil {
		return err
	}
	c.keyPair.Zero()
	c.keyPair = nil
	c.wif = &ct
	c.cryptType = cr.Name()
	log.Debugf("Encrypted %s key with %s", c.params.Name, c.cryptType)
	return nil
}

// Decrypt用当前加密器解密。失败时硬币保持加密状态。
func (c *Coin) Decrypt(passphrase []byte) error {
	if c.cryptType == "" {
		return coinError(ErrNotEncrypted, "coin is not encrypted", nil)
	}
	cr := c.settings.Cryptor
	if cr == nil || cr.Name() != c.cryptType {
		return coinError(ErrWrongCryptor, "key is encrypted with "+c.cryptType, nil)
	}

	d, err := cr.Decrypt(c, passphrase)
	if err != nil {
		return err
	}
	if c.addr != nil && d.addr != nil && !c.addr.Equal(*d.addr) {
		return coinError(ErrInvalidCoin, "decrypted key does not match the address", nil)
	}

	plain := *c
	plain.settings.Compressed = d.settings.Compressed
	plain.keyPair = d.keyPair
	plain.wif = d.wif
	plain.view = d.view
	plain.addr = d.addr
	plain.cryptType = ""
	if err := plain.validateAll(); err != nil {
		return err
	}
	*c = plain
	return nil
}

// Derive用相同网络与加密器创建新的明文硬币。供加密器使用。
func (c *Coin) Derive(priv bytedata.Data, compressed bool) (*Coin, error) {
	s := NewSettings(compressed, c.settings.Cryptor)
	return FromPrivate(c.params, priv, s)
}

// Params返回网络参数。
func (c *Coin) Params() *netparams.Params { return c.params }

// Settings返回硬币设置。
func (c *Coin) Settings() Settings { return c.settings }

// KeyPair返回密钥对，没有时为nil。
func (c *Coin) KeyPair() *ec.KeyPair { return c.keyPair }

// IsEncrypted报告WIF是否为密文。
func (c *Coin) IsEncrypted() bool { return c.cryptType != "" }

// CryptType返回加密器名称，明文时为空。
func (c *Coin) CryptType() string { return c.cryptType }

func opt(d *bytedata.Data) (bytedata.Data, bool) {
	if d == nil {
		return bytedata.Data{}, false
	}
	return *d, true
}

// WIF返回WIF或密文。
func (c *Coin) WIF() (bytedata.Data, bool) { return opt(c.wif) }

// View返回查看密钥。
func (c *Coin) View() (bytedata.Data, bool) { return opt(c.view) }

// Addr返回地址。
func (c *Coin) Addr() (bytedata.Data, bool) { return opt(c.addr) }

// HasWIF报告是否有WIF或密文。
func (c *Coin) HasWIF() bool { return c.wif != nil }

// HasView报告是否有查看密钥。
func (c *Coin) HasView() bool { return c.view != nil }

// HasAddr报告是否有地址。
func (c *Coin) HasAddr() bool { return c.addr != nil }

// WIFString返回WIF的字符串形式；已加密时按加密器格式编码。
func (c *Coin) WIFString() string {
	if c.wif == nil {
		return ""
	}
	v := c.family.wifView()
	if c.cryptType != "" && c.settings.Cryptor != nil {
		v = c.settings.Cryptor.Format(c.params).View()
	}
	return v.Encode(*c.wif)
}

// AddrString返回地址字符串。
func (c *Coin) AddrString() string {
	if c.addr == nil {
		return ""
	}
	return c.family.addrView().Encode(*c.addr)
}

// ViewString返回查看密钥的十六进制字符串。
func (c *Coin) ViewString() string {
	if c.view == nil {
		return ""
	}
	return format.Hex.Encode(*c.view)
}
