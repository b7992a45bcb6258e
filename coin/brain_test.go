//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"testing"

	"github.com/pyperwallet/pyperwallet/netparams"
)

func TestFromPassphrase(t *testing.T) {
	tests := []struct {
		params     *netparams.Params
		compressed bool
		wif        string
		addr       string
	}{
		{netparams.BitcoinParams, false,
			"5HyK3DyhYiuwy1tgJXTGyrVyNJqs1pPiXGe3YpMC6uyKiutuCRV",
			"1LX8yo6YCQCFpAGAc797kwVqya4ryjDB81"},
		{netparams.EthereumParams, true,
			"147e1f5b49a4810a33e6525da2e0e35ba220f9a5fe46585693efce48fa5cf305",
			"0x9ab50410588eEa933ab5b14f85f2791FD7c0bc9d"},
	}

	for i, test := range tests {
		s := NewSettings(test.compressed, nil)
		c, err := FromPassphrase(test.params,
			[]byte("testwalletpleasedontuse"), s)
		if err != nil {
			t.Errorf("FromPassphrase #%d: %v", i, err)
			continue
		}
		if c.WIFString() != test.wif {
			t.Errorf("FromPassphrase #%d WIF\ngot: %s\nwant: %s", i,
				c.WIFString(), test.wif)
		}
		if c.AddrString() != test.addr {
			t.Errorf("FromPassphrase #%d address\ngot: %s\nwant: %s", i,
				c.AddrString(), test.addr)
		}
	}

	_, err := FromPassphrase(netparams.BitcoinParams, nil, DefaultSettings())
	if !IsError(err, ErrInvalidCoin) {
		t.Errorf("empty passphrase: got %v, want ErrInvalidCoin", err)
	}
}
