//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pyperwallet/pyperwallet/coin"
)

//field是输出中的一行。
type field struct {
	label string
	value string
}

//pyBool按原有文本格式输出布尔值。
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

//coinBlocks返回硬币的三个输出块：头部、私密数据和公开数据。
//缺失的字段不出现在块中。
func coinBlocks(c *coin.Coin) [][]field {
	header := []field{
		{"Coin name", c.Params().Name},
		{"Compressed", pyBool(c.Settings().Compressed)},
	}

	var private, public []field
	if c.HasWIF() {
		if c.IsEncrypted() {
			label := fmt.Sprintf("Encrypted WIF key (%s)", c.CryptType())
			private = append(private, field{label, c.WIFString()})
		} else {
			private = append(private, field{"Private WIF key", c.WIFString()})
		}
	}
	kp := c.KeyPair()
	if kp != nil {
		if priv, ok := kp.Priv(); ok {
			private = append(private, field{"Private hex key",
				strings.ToUpper(priv.Hex())})
		}
	}
	if c.HasView() {
		private = append(private, field{"View key", c.ViewString()})
	}

	if c.HasAddr() {
		public = append(public, field{"Public address", c.AddrString()})
	}
	if kp != nil {
		if pub, ok := kp.Pub(c.Settings().Compressed); ok {
			public = append(public, field{"Public hex key",
				strings.ToUpper(pub.Hex())})
		}
	}

	return [][]field{header, private, public}
}

//writeText把硬币以可读文本写到w，非空块之间以空行分隔。
func writeText(w io.Writer, c *coin.Coin) error {
	bw := bufio.NewWriter(w)
	first := true
	for _, block := range coinBlocks(c) {
		if len(block) == 0 {
			continue
		}
		if !first {
			bw.WriteString("\n")
		}
		first = false
		for _, f := range block {
			fmt.Fprintf(bw, "%s: %s\n", f.label, f.value)
		}
	}
	return bw.Flush()
}
