//版权所有（c）2013-2015 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pyperwallet/pyperwallet/bip38"
	"github.com/pyperwallet/pyperwallet/coin"
	"github.com/pyperwallet/pyperwallet/internal/prompt"
	"github.com/pyperwallet/pyperwallet/internal/zero"
	"github.com/pyperwallet/pyperwallet/netparams"
	"github.com/pyperwallet/pyperwallet/vanity"
)

//cryptors是-e可选的加密器，按名称索引。
var cryptors = map[string]coin.Cryptor{
	bip38.Name: bip38.New(),
}

//prompter是命令需要的全部用户输入。
type prompter interface {
	coin.Prompter

	PromptInfo(name, desc string) (string, error)
}

func main() {
	//在os.exit之后解决defer不工作的问题。
	if err := walletMain(); err != nil {
		os.Exit(1)
	}
}

//walletmain是一个围绕主函数的工作，因为延迟了
//不通过调用os.exit来调用函数（如日志刷新）。
//相反，main运行此函数并检查是否存在非零错误，在该错误处
//指向已经运行的任何延迟，如果错误为非零，则程序
//可以以错误退出状态退出。
func walletMain() error {
	//加载配置并分析命令行。此功能也
	//初始化日志并进行相应的配置。
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	defer closeLogRotator()

	//启动时显示版本。
	log.Debugf("Version %s", version())

	if cfg.ListCoins {
		return listCoins(os.Stdout)
	}

	var pr prompter = prompt.NewTerminal()
	if cfg.NoPrompt {
		pr = prompt.FailFast{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := io.Writer(os.Stdout)
	if cfg.OutFile != "" {
		f := &outFile{path: cfg.OutFile}
		defer f.Close()
		out = f
	}

	if err := run(ctx, cfg, pr, out); err != nil {
		log.Errorf("%v", err)
		return err
	}
	if cfg.OutFile != "" {
		log.Infof("Wrote coin to %s", cfg.OutFile)
	}
	return nil
}

//run根据配置取得硬币，按需加密并写到out。
func run(ctx context.Context, cfg *config, pr prompter, out io.Writer) error {
	p, err := netparams.Lookup(cfg.Coin)
	if err != nil {
		return err
	}
	s := coin.NewSettings(cfg.Compression.Value, cryptors[cfg.Encryption])

	c, err := obtainCoin(ctx, cfg, p, s, pr)
	if err != nil {
		return err
	}

	if err := protect(c, pr); err != nil {
		return err
	}

	return writeText(out, c)
}

//obtainCoin按虚荣搜索、生成、提示、脑钱包或导入取得硬币。
func obtainCoin(ctx context.Context, cfg *config, p *netparams.Params,
	s coin.Settings, pr prompter) (*coin.Coin, error) {

	switch {
	case cfg.Vanity != "":
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		addInterruptHandler(cancel)

		g := vanity.New(p, s)
		g.Workers = cfg.Workers
		c, err := g.Run(ctx, cfg.Vanity)
		if err != nil {
			return nil, fmt.Errorf("vanity search after %d attempts: %w",
				g.Attempts(), err)
		}
		return c, nil

	case cfg.Input == inputGenerate:
		return coin.Generate(p, s)

	case cfg.Input == inputPrompt:
		input, err := pr.PromptInfo("Input",
			"Enter a "+p.Name+" key or address")
		if err != nil {
			return nil, err
		}
		return coin.Import(p, strings.TrimSpace(input), s, pr)

	case cfg.Input == inputBrain:
		pass, err := pr.PromptSecret("Brain wallet passphrase",
			"Enter the brain wallet passphrase.", true)
		if err != nil {
			return nil, err
		}
		defer zero.Bytes(pass)
		return coin.FromPassphrase(p, pass, s)
	}

	return coin.Import(p, cfg.Input, s, pr)
}

//protect在启用加密器且硬币持有明文私钥时加密硬币。
func protect(c *coin.Coin, pr prompter) error {
	s := c.Settings()
	if s.Cryptor == nil || c.IsEncrypted() {
		return nil
	}
	kp := c.KeyPair()
	if kp == nil || !kp.HasPrivate() {
		return nil
	}

	pass, err := pr.PromptSecret("Encryption passphrase",
		"Enter a passphrase to encrypt the private key with "+
			s.Cryptor.Name()+".", true)
	if err != nil {
		return err
	}
	defer zero.Bytes(pass)
	return c.Encrypt(pass)
}

//outFile在第一次写入时才创建输出文件，取得硬币失败时不留下空文件。
//已有的文件不会被覆盖。
type outFile struct {
	path string
	f    *os.File
}

func (o *outFile) Write(p []byte) (int, error) {
	if o.f == nil {
		f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
		if err != nil {
			return 0, err
		}
		o.f = f
	}
	n, err := o.f.Write(p)
	if err != nil {
		//写了一半的文件没有用处。
		o.f.Close()
		os.Remove(o.path)
		o.f = nil
	}
	return n, err
}

//Close关闭已创建的文件。
func (o *outFile) Close() error {
	if o.f == nil {
		return nil
	}
	err := o.f.Close()
	o.f = nil
	return err
}

//listCoins按名称顺序列出支持的网络。
func listCoins(w io.Writer) error {
	for _, p := range netparams.All() {
		if _, err := fmt.Fprintf(w, "%-24s %s\n", p.Name,
			strings.ToUpper(p.Ticker)); err != nil {
			return err
		}
	}
	return nil
}
