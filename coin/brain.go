//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pyperwallet/pyperwallet/bytedata"
	"github.com/pyperwallet/pyperwallet/internal/zero"
	"github.com/pyperwallet/pyperwallet/netparams"
)

// FromPassphrase从脑钱包口令创建硬币，私钥是口令的SHA256。
// 口令不能为空。
func FromPassphrase(p *netparams.Params, passphrase []byte, s Settings) (*Coin, error) {
	if len(passphrase) == 0 {
		return nil, coinError(ErrInvalidCoin, "empty brain wallet passphrase", nil)
	}
	sum := chainhash.HashH(passphrase)
	defer zero.Bytea32((*[32]byte)(&sum))

	log.Debugf("Deriving %s key from brain wallet passphrase", p.Name)
	return FromPrivate(p, bytedata.New(sum[:]), s)
}
