//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/format"
	"github.com/pyperwallet/pyperwallet/netparams"
)

// Settings是用户可控的硬币设置。
type Settings struct {
	// Compressed决定WIF与地址使用压缩公钥。
	Compressed bool

	// Cryptor是当前启用的加密器，可以为nil。
	Cryptor Cryptor
}

// DefaultSettings返回默认设置：压缩，无加密器。
func DefaultSettings() Settings {
	return Settings{Compressed: true}
}

// NewSettings创建设置。
func NewSettings(compressed bool, cryptor Cryptor) Settings {
	return Settings{Compressed: compressed, Cryptor: cryptor}
}

// Cryptor用口令加密和解密硬币的私钥。
type Cryptor interface {
	// Name是写入硬币加密类型的标识。
	Name() string

	// Format返回该网络上密文的格式。
	Format(p *netparams.Params) *format.Format

	// Validate不用口令检查密文的结构与校验和。
	Validate(p *netparams.Params, ciphertext bytedata.Data) error

	// Encrypt返回c的私钥密文。c必须持有私钥。
	Encrypt(c *Coin, passphrase []byte) (bytedata.Data, error)

	// Decrypt从已加密的c重建明文硬币。口令错误时返回
	// ErrDecryptionUnsuccessful。
	Decrypt(c *Coin, passphrase []byte) (*Coin, error)
}

// Prompter向用户询问选择与秘密输入。
type Prompter interface {
	format.Chooser

	// PromptSecret读取秘密。confirm为真时要求输入两次并一致。
	PromptSecret(name, desc string, confirm bool) ([]byte, error)
}
