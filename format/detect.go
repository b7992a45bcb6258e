//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguous表示多个格式匹配且没有可用的选择者。
	ErrAmbiguous = errors.New("input matches several formats")

	// ErrInvalidChoice表示选择者返回了候选之外的名称。
	ErrInvalidChoice = errors.New("chosen format is not a candidate")
)

// Chooser在多个候选中做出选择，通常由交互式提示实现。
type Chooser interface {
	PromptChoice(name, desc string, options []string) (string, error)
}

// AutoDetector在一组格式中为输入字符串挑选唯一的格式。
type AutoDetector struct {
	Formats []Matcher
	Chooser Chooser
}

// NewAutoDetector创建检测器。chooser可以为nil。
func NewAutoDetector(formats []Matcher, chooser Chooser) *AutoDetector {
	return &AutoDetector{Formats: formats, Chooser: chooser}
}

// Candidates按注册顺序返回所有匹配input的格式。
func (a *AutoDetector) Candidates(input string) []Matcher {
	var valid []Matcher
	for _, f := range a.Formats {
		if f.Match(input) {
			valid = append(valid, f)
		}
	}
	return valid
}

// Detect返回唯一匹配的格式。没有匹配时返回(nil, nil)，由调用方带着
// 输入内容报错；多个匹配时交给Chooser选择。
func (a *AutoDetector) Detect(input string) (Matcher, error) {
	valid := a.Candidates(input)
	switch len(valid) {
	case 0:
		return nil, nil
	case 1:
		return valid[0], nil
	}

	names := make([]string, len(valid))
	for i, f := range valid {
		names[i] = f.Name()
	}
	if a.Chooser == nil {
		return nil, fmt.Errorf("%w: %v", ErrAmbiguous, names)
	}

	desc := "The format for " + input + " could not be auto-detected."
	name, err := a.Chooser.PromptChoice("Format", desc, names)
	if err != nil {
		return nil, err
	}
	for _, f := range valid {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidChoice, name)
}
