//版权所有（c）2015-2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pyperwallet/pyperwallet/internal/zero"
	"golang.org/x/term"
)

// ErrNoInput由FailFast对所有提示返回。
var ErrNoInput = errors.New("input required but prompting is disabled")

// Terminal从终端读取用户输入。普通输入逐行读取，秘密输入不回显。
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer

	readPassword func() ([]byte, error)
}

// NewTerminal创建读取标准输入的提示器，提示写到标准错误。
func NewTerminal() *Terminal {
	fd := int(os.Stdin.Fd())
	return &Terminal{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stderr,
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(fd)
		},
	}
}

// newScripted创建从in读取所有输入（包括秘密）的提示器。
func newScripted(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{reader: bufio.NewReader(in), out: out}
	t.readPassword = func() ([]byte, error) {
		line, err := t.reader.ReadBytes('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, err
		}
		return line, nil
	}
	return t
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptInfo提示输入一行普通信息，重复直到非空。
func (t *Terminal) PromptInfo(name, desc string) (string, error) {
	for {
		if desc != "" {
			fmt.Fprintln(t.out, desc)
		}
		fmt.Fprintf(t.out, "%s: ", name)
		reply, err := t.readLine()
		if err != nil {
			return "", err
		}
		if reply != "" {
			return reply, nil
		}
	}
}

// PromptChoice列出选项并要求输入编号，重复直到编号有效。
func (t *Terminal) PromptChoice(name, desc string, options []string) (string, error) {
	for {
		if desc != "" {
			fmt.Fprintln(t.out, desc)
		}
		fmt.Fprintf(t.out, "%s options:\n", name)
		for i, o := range options {
			fmt.Fprintf(t.out, " %d) %s\n", i+1, o)
		}
		fmt.Fprint(t.out, "Option number: ")
		reply, err := t.readLine()
		if err != nil {
			return "", err
		}

		n, err := strconv.Atoi(reply)
		if err != nil {
			fmt.Fprintln(t.out, "Please enter a number.")
			continue
		}
		if n < 1 || n > len(options) {
			fmt.Fprintln(t.out, "That number is not a valid option.")
			continue
		}
		return options[n-1], nil
	}
}

// trimEOL去掉行尾的换行符。秘密中的其他空白都会保留。
func trimEOL(b []byte) []byte {
	return bytes.TrimRight(b, "\r\n")
}

// PromptSecret提示输入秘密。confirm为真时要求再次输入并重复提示，
// 直到两次输入一致。
func (t *Terminal) PromptSecret(name, desc string, confirm bool) ([]byte, error) {
	for {
		if desc != "" {
			fmt.Fprintln(t.out, desc)
		}
		fmt.Fprintf(t.out, "%s (will not echo): ", name)
		pass, err := t.readPassword()
		if err != nil {
			return nil, err
		}
		fmt.Fprint(t.out, "\n")
		pass = trimEOL(pass)
		if len(pass) == 0 {
			continue
		}

		if !confirm {
			return pass, nil
		}

		fmt.Fprintf(t.out, "%s (confirm): ", name)
		again, err := t.readPassword()
		if err != nil {
			return nil, err
		}
		fmt.Fprint(t.out, "\n")
		match := bytes.Equal(pass, trimEOL(again))
		zero.Bytes(again)
		if !match {
			zero.Bytes(pass)
			fmt.Fprintf(t.out, "%s does not match.\n", name)
			continue
		}
		return pass, nil
	}
}

// FailFast在需要用户输入时立即失败，用于非交互运行。
type FailFast struct{}

// PromptInfo返回ErrNoInput。
func (FailFast) PromptInfo(name, desc string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrNoInput, name)
}

// PromptChoice返回ErrNoInput。
func (FailFast) PromptChoice(name, desc string, options []string) (string, error) {
	return "", fmt.Errorf("%w: %s (%s)", ErrNoInput, desc,
		strings.Join(options, ", "))
}

// PromptSecret返回ErrNoInput。
func (FailFast) PromptSecret(name, desc string, confirm bool) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s", ErrNoInput, name)
}
