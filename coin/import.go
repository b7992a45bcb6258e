//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/format"
	"github.com/pyperwallet/pyperwallet/internal/zero"
	"github.com/pyperwallet/pyperwallet/netparams"
)

// 自动检测使用的格式名称。
const (
	FormatWIF  = "WIF key"
	FormatAddr = "address"
	FormatPriv = "private key"
	FormatPub  = "public key"
	FormatView = "view key"
)

// maxPassphraseAttempts是导入加密密钥时允许的口令尝试次数。
const maxPassphraseAttempts = 3

// ParseWIF按网络的编码把字符串转换为WIF数据。
func ParseWIF(p *netparams.Params, s string) (bytedata.Data, error) {
	return familyOf(p).parseWIF(p, s)
}

// ParseAddr按网络的编码把字符串转换为地址数据。
func ParseAddr(p *netparams.Params, s string) (bytedata.Data, error) {
	return familyOf(p).parseAddr(p, s)
}

// ParseView把十六进制字符串转换为查看密钥。
func ParseView(p *netparams.Params, s string) (bytedata.Data, error) {
	if !p.HasPrivacy {
		return bytedata.Data{}, coinError(ErrNotImplemented,
			p.Name+" has no view keys", nil)
	}
	return parseHex("view key", s)
}

// ParsePrivate把十六进制字符串转换为原始私钥。
func ParsePrivate(p *netparams.Params, s string) (bytedata.Data, error) {
	return parseHex("private key", s)
}

// ParsePublic把十六进制字符串转换为公钥。
func ParsePublic(p *netparams.Params, s string) (bytedata.Data, error) {
	return parseHex("public key", s)
}

func parseHex(what, s string) (bytedata.Data, error) {
	d, err := bytedata.FromHex(s)
	if err != nil {
		return bytedata.Data{}, coinError(ErrEncoding, "invalid "+what+" "+s, err)
	}
	return d, nil
}

// Formats返回网络上可自动检测的全部格式。cryptor不为nil时包含
// 其密文格式。
func Formats(p *netparams.Params, cryptor Cryptor) []format.Matcher {
	f := familyOf(p)
	var out []format.Matcher
	if wf := f.wifFormat(p); wf != nil {
		out = append(out, wf)
	}
	out = append(out, f.addrFormat(p))

	size := p.Curve.KeySize()
	out = append(out, format.New(FormatPriv, format.Hex, size))

	pub, err := format.Combine(
		format.New(FormatPub, format.Hex, size+1).WithPrefix("02", "03"),
		format.New(FormatPub, format.Hex, 2*size+1).WithPrefix("04"),
	)
	if err != nil {
		panic(err)
	}
	out = append(out, pub)

	if p.HasPrivacy {
		out = append(out, format.New(FormatView, format.Hex, size))
	}
	if cryptor != nil {
		out = append(out, cryptor.Format(p))
	}
	return out
}

// Import检测input的格式并据此创建硬币。prompter可以为nil；
// 此时有歧义的输入返回错误，加密输入保持加密状态。
func Import(p *netparams.Params, input string, s Settings, prompter Prompter) (*Coin, error) {
	var chooser format.Chooser
	if prompter != nil {
		chooser = prompter
	}
	m, err := format.NewAutoDetector(Formats(p, s.Cryptor), chooser).Detect(input)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, coinError(ErrInvalidCoin,
			"no "+p.Name+" format matches "+input, nil)
	}
	log.Debugf("Detected %s input as %s", p.Name, m.Name())

	if m.CryptorName() != "" {
		return importEncrypted(p, input, s, prompter)
	}

	switch m.Name() {
	case FormatWIF:
		d, err := ParseWIF(p, input)
		if err != nil {
			return nil, err
		}
		return FromWIF(p, d, s)

	case FormatAddr:
		d, err := ParseAddr(p, input)
		if err != nil {
			return nil, err
		}
		return FromAddr(p, d, s)

	case FormatPriv:
		d, err := ParsePrivate(p, input)
		if err != nil {
			return nil, err
		}
		return FromPrivate(p, d, s)

	case FormatPub:
		d, err := ParsePublic(p, input)
		if err != nil {
			return nil, err
		}
		return FromPublic(p, d, s)

	case FormatView:
		d, err := ParseView(p, input)
		if err != nil {
			return nil, err
		}
		return FromView(p, d, s)
	}
	return nil, coinError(ErrNotImplemented, "no loader for format "+m.Name(), nil)
}

func importEncrypted(p *netparams.Params, input string, s Settings, prompter Prompter) (*Coin, error) {
	ct, err := s.Cryptor.Format(p).View().Decode(input)
	if err != nil {
		return nil, coinError(ErrEncoding, "invalid encrypted key "+input, err)
	}
	c, err := FromEncrypted(p, ct, s)
	if err != nil || prompter == nil {
		return c, err
	}

	for i := 0; i < maxPassphraseAttempts; i++ {
		pass, perr := prompter.PromptSecret("Passphrase",
			"Enter the passphrase for "+input+".", false)
		if perr != nil {
			return nil, perr
		}
		err = c.Decrypt(pass)
		zero.Bytes(pass)
		if err == nil {
			return c, nil
		}
		if !IsError(err, ErrDecryptionUnsuccessful) {
			return nil, err
		}
		log.Warnf("Incorrect passphrase (attempt %d of %d)", i+1,
			maxPassphraseAttempts)
	}
	return nil, err
}
