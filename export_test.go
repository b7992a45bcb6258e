//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyperwallet/pyperwallet/bip38"
	"github.com/pyperwallet/pyperwallet/coin"
	"github.com/pyperwallet/pyperwallet/internal/cfgutil"
	"github.com/pyperwallet/pyperwallet/internal/prompt"
	"github.com/pyperwallet/pyperwallet/netparams"
)

//scripted按顺序回答提示。
type scripted struct {
	info    []string
	secrets []string
}

func (s *scripted) PromptInfo(name, desc string) (string, error) {
	if len(s.info) == 0 {
		return "", errors.New("unexpected prompt " + name)
	}
	v := s.info[0]
	s.info = s.info[1:]
	return v, nil
}

func (s *scripted) PromptChoice(name, desc string, options []string) (string, error) {
	return "", errors.New("unexpected choice " + name)
}

func (s *scripted) PromptSecret(name, desc string, confirm bool) ([]byte, error) {
	if len(s.secrets) == 0 {
		return nil, errors.New("unexpected secret prompt " + name)
	}
	v := s.secrets[0]
	s.secrets = s.secrets[1:]
	return []byte(v), nil
}

func testConfig(coinName, input string, compressed bool) *config {
	return &config{
		Coin:        coinName,
		Input:       input,
		Encryption:  defaultEncryption,
		Compression: cfgutil.NewBoolFlag(compressed),
		Workers:     2,
	}
}

func TestWriteText(t *testing.T) {
	p := netparams.BitcoinParams
	wif := "KyF4khaPVK9YeMBUukyKwq5qKvYNux4KM2FibQ7bZWxTaYVTn6XU"
	addr := "1PYqAUK4q8Lbq32o32ouyQMUFkzszw7ywx"

	fromWIF, err := coin.Import(p, wif, coin.DefaultSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	fromAddr, err := coin.Import(p, addr, coin.DefaultSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		c    *coin.Coin
		want string
	}{
		{fromWIF, `Coin name: Bitcoin
Compressed: True

Private WIF key: KyF4khaPVK9YeMBUukyKwq5qKvYNux4KM2FibQ7bZWxTaYVTn6XU
Private hex key: 3C5F262F56AF74A2C314354BE7EA0CCAFEDA1C059E2B5B3B4C3151912C774F78

Public address: 1PYqAUK4q8Lbq32o32ouyQMUFkzszw7ywx
Public hex key: 02FF136594F723F047A0917A8EC66B56079841AC989FB4F6AC75982FC7F57E980A
`},
		{fromAddr, `Coin name: Bitcoin
Compressed: True

Public address: 1PYqAUK4q8Lbq32o32ouyQMUFkzszw7ywx
`},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		if err := writeText(&buf, test.c); err != nil {
			t.Errorf("writeText #%d: %v", i, err)
			continue
		}
		if buf.String() != test.want {
			t.Errorf("writeText #%d\ngot:\n%s\nwant:\n%s", i, buf.String(), test.want)
		}
	}
}

func TestRunOutputs(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config
		pr   *scripted
		want string
	}{
		{
			name: "prompted address",
			cfg:  testConfig("bitcoin", inputPrompt, true),
			pr:   &scripted{info: []string{"17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmR\n"}},
			want: `Coin name: Bitcoin
Compressed: True

Public address: 17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmR
`,
		},
		{
			name: "brain wallet",
			cfg:  testConfig("btc", inputBrain, false),
			pr:   &scripted{secrets: []string{"testwalletpleasedontuse"}},
			want: `Coin name: Bitcoin
Compressed: False

Private WIF key: 5HyK3DyhYiuwy1tgJXTGyrVyNJqs1pPiXGe3YpMC6uyKiutuCRV
Private hex key: 147E1F5B49A4810A33E6525DA2E0E35BA220F9A5FE46585693EFCE48FA5CF305

Public address: 1LX8yo6YCQCFpAGAc797kwVqya4ryjDB81
Public hex key: 04FE22B51BA42A72C90C85F74CF9D4088496620991535D92CF6768DEC8BBD14A4AB01675E556AEBD6AD47A4035C71EA22DFFF1D2DABD1F1396F40D16571FD9D5B0
`,
		},
		{
			name: "ethereum private key",
			cfg:  testConfig("ethereum", inputPrompt, true),
			pr: &scripted{info: []string{
				"147E1F5B49A4810A33E6525DA2E0E35BA220F9A5FE46585693EFCE48FA5CF305"}},
			want: `Coin name: Ethereum
Compressed: True

Private WIF key: 147e1f5b49a4810a33e6525da2e0e35ba220f9a5fe46585693efce48fa5cf305
Private hex key: 147E1F5B49A4810A33E6525DA2E0E35BA220F9A5FE46585693EFCE48FA5CF305

Public address: 0x9ab50410588eEa933ab5b14f85f2791FD7c0bc9d
Public hex key: 02FE22B51BA42A72C90C85F74CF9D4088496620991535D92CF6768DEC8BBD14A4A
`,
		},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		err := run(context.Background(), test.cfg, test.pr, &buf)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if buf.String() != test.want {
			t.Errorf("%s\ngot:\n%s\nwant:\n%s", test.name, buf.String(), test.want)
		}
	}
}

func TestRunInvalidInput(t *testing.T) {
	inputs := []string{
		"hi",
		"17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmr",
		"17nArmyTmUGw9uPk3HsCabRj5wN7LfWSm0",
	}
	for _, input := range inputs {
		pr := &scripted{info: []string{input}}
		var buf bytes.Buffer
		err := run(context.Background(), testConfig("bitcoin", inputPrompt, true), pr, &buf)
		if !coin.IsError(err, coin.ErrInvalidCoin) {
			t.Errorf("%s: got %v, want ErrInvalidCoin", input, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: unexpected output %q", input, buf.String())
		}
	}
}

func TestRunEncrypt(t *testing.T) {
	cfg := testConfig("bitcoin", "KyF4khaPVK9YeMBUukyKwq5qKvYNux4KM2FibQ7bZWxTaYVTn6XU", true)
	cfg.Encryption = bip38.Name

	var buf bytes.Buffer
	err := run(context.Background(), cfg, &scripted{secrets: []string{"12345"}}, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := `Coin name: Bitcoin
Compressed: True

Encrypted WIF key (bip38): 6PYS3EufMDqJZMqKxHZ2fGTe1FDGWQy9vYrnuJeiUUxppqTDfUNKoVjJXu

Public address: 1PYqAUK4q8Lbq32o32ouyQMUFkzszw7ywx
`
	if buf.String() != want {
		t.Errorf("encrypted output\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

// 取得硬币失败时不创建输出文件，成功后文件只对所有者可读写。
func TestOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coin.txt")

	f := &outFile{path: path}
	err := run(context.Background(), testConfig("bitcoin", "hi", true), &scripted{}, f)
	if !coin.IsError(err, coin.ErrInvalidCoin) {
		t.Fatalf("invalid input: got %v, want ErrInvalidCoin", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("output file left behind after failure: %v", err)
	}

	f = &outFile{path: path}
	err = run(context.Background(), testConfig("bitcoin", "17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmR", true), &scripted{}, f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "Public address: 17nArmyTmUGw9uPk3HsCabRj5wN7LfWSmR") {
		t.Errorf("unexpected file contents:\n%s", b)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode %o, want 600", perm)
	}

	// 已有的文件不被覆盖。
	f = &outFile{path: path}
	if _, err := f.Write([]byte("x")); !os.IsExist(err) {
		t.Errorf("write over existing file: got %v, want exist error", err)
	}
}

func TestRunNoPrompt(t *testing.T) {
	err := run(context.Background(), testConfig("bitcoin", inputPrompt, true),
		prompt.FailFast{}, &bytes.Buffer{})
	if !errors.Is(err, prompt.ErrNoInput) {
		t.Errorf("got %v, want ErrNoInput", err)
	}
}

func TestRunVanity(t *testing.T) {
	cfg := testConfig("bitcoin", inputGenerate, true)
	cfg.Vanity = "1"

	var buf bytes.Buffer
	if err := run(context.Background(), cfg, &scripted{}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "Public address: 1") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestListCoins(t *testing.T) {
	var buf bytes.Buffer
	if err := listCoins(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(netparams.Names()) {
		t.Errorf("listed %d networks, want %d", len(lines), len(netparams.Names()))
	}
	if !strings.Contains(buf.String(), "Ethereum") {
		t.Errorf("Ethereum missing from list")
	}
}

func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		level string
		ok    bool
	}{
		{"info", true},
		{"COIN=debug,VNTY=trace", true},
		{"loud", false},
		{"COIN", false},
		{"NOPE=info", false},
		{"COIN=loud", false},
		{"COIN=info,debug", false},
	}
	for _, test := range tests {
		err := parseAndSetDebugLevels(test.level)
		if (err == nil) != test.ok {
			t.Errorf("parseAndSetDebugLevels(%q): %v", test.level, err)
		}
	}
	setLogLevels(defaultLogLevel)
}
