//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin_test

import (
	"errors"
	"testing"

	"github.com/pyperwallet/pyperwallet/bip38"
	"github.com/pyperwallet/pyperwallet/coin"
	"github.com/pyperwallet/pyperwallet/format"
	"github.com/pyperwallet/pyperwallet/netparams"
)

// scriptedPrompter按顺序返回预设的口令。
type scriptedPrompter struct {
	choice   string
	secrets  []string
	prompted int
}

func (s *scriptedPrompter) PromptChoice(name, desc string, options []string) (string, error) {
	return s.choice, nil
}

func (s *scriptedPrompter) PromptSecret(name, desc string, confirm bool) ([]byte, error) {
	if s.prompted >= len(s.secrets) {
		return nil, errors.New("no more secrets")
	}
	s.prompted++
	return []byte(s.secrets[s.prompted-1]), nil
}

func TestImport(t *testing.T) {
	tests := []struct {
		p       *netparams.Params
		input   string
		wif     string
		addr    string
		private bool
	}{
		{
			p:       netparams.BitcoinParams,
			input:   "KyF4khaPVK9YeMBUukyKwq5qKvYNux4KM2FibQ7bZWxTaYVTn6XU",
			wif:     "KyF4khaPVK9YeMBUukyKwq5qKvYNux4KM2FibQ7bZWxTaYVTn6XU",
			addr:    "1PYqAUK4q8Lbq32o32ouyQMUFkzszw7ywx",
			private: true,
		},
		{
			p:     netparams.BitcoinParams,
			input: "17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmR",
			addr:  "17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmR",
		},
		{
			p:     netparams.BitcoinParams,
			input: "04FE22B51BA42A72C90C85F74CF9D4088496620991535D92CF6768DEC8BBD14A4AB01675E556AEBD6AD47A4035C71EA22DFFF1D2DABD1F1396F40D16571FD9D5B0",
			addr:  "1LX8yo6YCQCFpAGAc797kwVqya4ryjDB81",
		},
		{
			p:       netparams.EthereumParams,
			input:   "147E1F5B49A4810A33E6525DA2E0E35BA220F9A5FE46585693EFCE48FA5CF305",
			wif:     "147e1f5b49a4810a33e6525da2e0e35ba220f9a5fe46585693efce48fa5cf305",
			addr:    "0x9ab50410588eEa933ab5b14f85f2791FD7c0bc9d",
			private: true,
		},
		{
			p:     netparams.EthereumParams,
			input: "0x9ab50410588eEa933ab5b14f85f2791FD7c0bc9d",
			addr:  "0x9ab50410588eEa933ab5b14f85f2791FD7c0bc9d",
		},
	}

	for i, test := range tests {
		c, err := coin.Import(test.p, test.input, coin.DefaultSettings(), nil)
		if err != nil {
			t.Errorf("Import #%d (%s): %v", i, test.input, err)
			continue
		}
		if c.WIFString() != test.wif {
			t.Errorf("Import #%d WIF\ngot: %s\nwant: %s", i, c.WIFString(), test.wif)
		}
		if c.AddrString() != test.addr {
			t.Errorf("Import #%d address\ngot: %s\nwant: %s", i, c.AddrString(), test.addr)
		}
		if (c.KeyPair() != nil && c.KeyPair().HasPrivate()) != test.private {
			t.Errorf("Import #%d: private key presence %v", i, !test.private)
		}
	}
}

func TestImportInvalid(t *testing.T) {
	tests := []string{
		"hi",
		"17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmr",
		"17nArmyTmUGw9uPk3HsCabRj5wN7LfWSm0",
	}
	for i, input := range tests {
		_, err := coin.Import(netparams.BitcoinParams, input, coin.DefaultSettings(), nil)
		if !coin.IsError(err, coin.ErrInvalidCoin) {
			t.Errorf("Import #%d (%s): got %v, want ErrInvalidCoin", i, input, err)
		}
	}
}

const (
	encrypted = "6PYS3EufMDqJZMqKxHZ2fGTe1FDGWQy9vYrnuJeiUUxppqTDfUNKoVjJXu"
	plainWIF  = "KyF4khaPVK9YeMBUukyKwq5qKvYNux4KM2FibQ7bZWxTaYVTn6XU"
)

// 地址中任一字符被改为非十六进制字符或大小写翻转都会被拒绝。
func TestImportMutatedEthAddr(t *testing.T) {
	const addr = "0xB8F758b3f2016Bb391fb18C7Ef39847ef164649e"
	p := netparams.EthereumParams

	for i := 2; i < len(addr); i++ {
		muts := []byte{'g'}
		switch c := addr[i]; {
		case c >= 'a' && c <= 'f':
			muts = append(muts, c-'a'+'A')
		case c >= 'A' && c <= 'F':
			muts = append(muts, c-'A'+'a')
		}
		for _, m := range muts {
			s := addr[:i] + string(m) + addr[i+1:]
			_, err := coin.Import(p, s, coin.DefaultSettings(), nil)
			if !coin.IsError(err, coin.ErrInvalidCoin) {
				t.Errorf("Import(%s): got %v, want ErrInvalidCoin", s, err)
			}
		}
	}
}

func TestImportEncrypted(t *testing.T) {
	p := netparams.BitcoinParams
	s := coin.NewSettings(true, bip38.New())

	c, err := coin.Import(p, encrypted, s, nil)
	if err != nil {
		t.Fatalf("Import without prompter: %v", err)
	}
	if !c.IsEncrypted() || c.WIFString() != encrypted {
		t.Errorf("expected encrypted coin, got %s", c.WIFString())
	}

	prompter := &scriptedPrompter{secrets: []string{"bad", "worse", "12345"}}
	c, err = coin.Import(p, encrypted, s, prompter)
	if err != nil {
		t.Fatalf("Import with prompter: %v", err)
	}
	if prompter.prompted != 3 {
		t.Errorf("prompted %d times, want 3", prompter.prompted)
	}
	if c.IsEncrypted() || c.WIFString() != plainWIF {
		t.Errorf("decrypted WIF: %s", c.WIFString())
	}

	prompter = &scriptedPrompter{secrets: []string{"a", "b", "c", "12345"}}
	_, err = coin.Import(p, encrypted, s, prompter)
	if !coin.IsError(err, coin.ErrDecryptionUnsuccessful) {
		t.Errorf("three bad passphrases: got %v", err)
	}
	if prompter.prompted != 3 {
		t.Errorf("prompted %d times, want 3", prompter.prompted)
	}
}

func TestImportEncryptedBadChecksum(t *testing.T) {
	p := netparams.BitcoinParams
	s := coin.NewSettings(true, bip38.New())
	bad := encrypted[:len(encrypted)-1] + "v"

	for _, prompter := range []coin.Prompter{nil, &scriptedPrompter{secrets: []string{"12345"}}} {
		c, err := coin.Import(p, bad, s, prompter)
		if !coin.IsError(err, coin.ErrInvalidCoin) {
			t.Errorf("Import(%s): got %v, want ErrInvalidCoin", bad, err)
		}
		if c != nil {
			t.Errorf("Import(%s) returned a coin", bad)
		}
	}
}

// 加密格式只在设置了加密器时参与检测。
func TestImportEncryptedWithoutCryptor(t *testing.T) {
	_, err := coin.Import(netparams.BitcoinParams, encrypted, coin.DefaultSettings(), nil)
	if !coin.IsError(err, coin.ErrInvalidCoin) {
		t.Errorf("got %v, want ErrInvalidCoin", err)
	}
}

func TestFormats(t *testing.T) {
	names := func(ms []format.Matcher) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.Name())
		}
		return out
	}

	got := names(coin.Formats(netparams.BitcoinParams, bip38.New()))
	want := []string{coin.FormatWIF, coin.FormatAddr, coin.FormatPriv,
		coin.FormatPub, "encrypted WIF key"}
	if len(got) != len(want) {
		t.Fatalf("Formats\ngot: %v\nwant: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	got = names(coin.Formats(netparams.EthereumParams, nil))
	for _, n := range got {
		if n == coin.FormatWIF {
			t.Errorf("Ethereum has a separate WIF format")
		}
	}
}
