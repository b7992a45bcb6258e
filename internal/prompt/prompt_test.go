//版权所有（c）2015-2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptInfo(t *testing.T) {
	var out bytes.Buffer
	p := newScripted(strings.NewReader("\nvalue\n"), &out)
	got, err := p.PromptInfo("Query", "")
	if err != nil || got != "value" {
		t.Fatalf("PromptInfo: got %q, %v", got, err)
	}
	if n := strings.Count(out.String(), "Query: "); n != 2 {
		t.Errorf("prompted %d times, want 2", n)
	}
}

func TestPromptChoice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2\n", "value"},
		{"x\n0\n4\n3\n", "high"},
		{"1", "low"},
	}
	options := []string{"low", "value", "high"}
	for i, test := range tests {
		var out bytes.Buffer
		p := newScripted(strings.NewReader(test.in), &out)
		got, err := p.PromptChoice("Query", "Pick one.", options)
		if err != nil {
			t.Errorf("PromptChoice #%d: %v", i, err)
			continue
		}
		if got != test.want {
			t.Errorf("PromptChoice #%d\ngot: %s\nwant: %s", i, got, test.want)
		}
	}

	p := newScripted(strings.NewReader(""), io.Discard)
	if _, err := p.PromptChoice("Query", "", options); !errors.Is(err, io.EOF) {
		t.Errorf("empty input: got %v, want EOF", err)
	}
}

func TestPromptSecret(t *testing.T) {
	tests := []struct {
		in      string
		confirm bool
		want    string
	}{
		{"value\n", false, "value"},
		{"value\nvalue\n", true, "value"},
		{"\nvalue\nother\nvalue\nvalue\n", true, "value"},
		{" pass word \n", false, " pass word "},
		{" pass word \r\n pass word \r\n", true, " pass word "},
		{"pass \npass\npass \npass \n", true, "pass "},
	}
	for i, test := range tests {
		var out bytes.Buffer
		p := newScripted(strings.NewReader(test.in), &out)
		got, err := p.PromptSecret("Passphrase", "", test.confirm)
		if err != nil {
			t.Errorf("PromptSecret #%d: %v", i, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("PromptSecret #%d\ngot: %s\nwant: %s", i, got, test.want)
		}
	}
}

func TestFailFast(t *testing.T) {
	var p FailFast
	if _, err := p.PromptInfo("Input", ""); !errors.Is(err, ErrNoInput) {
		t.Errorf("PromptInfo: %v", err)
	}
	if _, err := p.PromptChoice("Format", "", []string{"a", "b"}); !errors.Is(err, ErrNoInput) {
		t.Errorf("PromptChoice: %v", err)
	}
	if _, err := p.PromptSecret("Passphrase", "", true); !errors.Is(err, ErrNoInput) {
		t.Errorf("PromptSecret: %v", err)
	}
}
