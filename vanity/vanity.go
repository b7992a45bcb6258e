//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

// Package vanity在多个工作协程中随机生成硬币，直到地址以给定模式
// 开头。
package vanity

import (
	"context"
	"regexp"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pyperwallet/pyperwallet/coin"
	"github.com/pyperwallet/pyperwallet/netparams"
	"golang.org/x/sync/errgroup"
)

// substitutions列出字母可被替换成的数字。
var substitutions = map[rune]string{
	'i': "1",
	'o': "0",
	'l': "1",
	'e': "3",
	's': "5",
}

// InvalidCharError表示模式中含有非字母数字字符。
type InvalidCharError struct {
	Pattern string
	Char    rune
}

// Error满足error接口。
func (e *InvalidCharError) Error() string {
	return e.Pattern + " is not alphanumeric (" + string(e.Char) + ")"
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

// Regex把模式编译为从地址开头匹配的正则表达式。数字只匹配自身；
// 字母匹配大小写两种形式以及替换数字。
func Regex(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		var allowed []string
		switch {
		case isDigit(r):
			allowed = []string{string(r)}
		case isLetter(r):
			lower := strings.ToLower(string(r))
			allowed = []string{lower, strings.ToUpper(lower)}
			if sub, ok := substitutions[rune(lower[0])]; ok {
				allowed = append(allowed, sub)
			}
		default:
			return nil, &InvalidCharError{Pattern: pattern, Char: r}
		}
		b.WriteString("(?:")
		b.WriteString(strings.Join(allowed, "|"))
		b.WriteString(")")
	}
	return regexp.Compile(b.String())
}

// Generator搜索地址符合模式的硬币。
type Generator struct {
	Params   *netparams.Params
	Settings coin.Settings
	Workers  int

	attempts atomic.Uint64
}

// New创建生成器，工作协程数默认为CPU数量。
func New(p *netparams.Params, s coin.Settings) *Generator {
	return &Generator{Params: p, Settings: s, Workers: runtime.NumCPU()}
}

// Attempts返回已生成的候选硬币数量。
func (g *Generator) Attempts() uint64 {
	return g.attempts.Load()
}

// Run启动工作协程并返回第一个匹配的硬币。parent被取消且没有结果时
// 返回parent.Err()。
func (g *Generator) Run(parent context.Context, pattern string) (*coin.Coin, error) {
	re, err := Regex(pattern)
	if err != nil {
		return nil, err
	}

	workers := g.Workers
	if workers < 1 {
		workers = 1
	}
	log.Infof("Searching for %s address matching %q with %d workers",
		g.Params.Name, pattern, workers)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	found := make(chan *coin.Coin, 1)
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			return g.search(ctx, re, found)
		})
	}

	// done在所有工作协程退出后收到Wait的结果。
	done := make(chan error, 1)
	go func() {
		done <- eg.Wait()
	}()

	select {
	case c := <-found:
		cancel()
		<-done
		log.Infof("Found %s after %d attempts", c.AddrString(), g.Attempts())
		return c, nil

	case err := <-done:
		// 结果可能在所有工作协程退出前刚好送达。
		select {
		case c := <-found:
			return c, nil
		default:
		}
		if err != nil {
			return nil, err
		}
		return nil, parent.Err()
	}
}

func (g *Generator) search(ctx context.Context, re *regexp.Regexp,
	found chan<- *coin.Coin) error {

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c, err := coin.Generate(g.Params, g.Settings)
		if err != nil {
			return err
		}
		g.attempts.Add(1)
		if !re.MatchString(c.AddrString()) {
			continue
		}

		select {
		case found <- c:
		default:
			// 已有结果，丢弃。
		}
		return nil
	}
}
