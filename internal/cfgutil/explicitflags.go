//版权所有（c）2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package cfgutil

import (
	"fmt"
	"strconv"
	"strings"
)

// explicit记录值是否由flags包显式设置。没有它就无法区分
// 保持默认值的标志与被显式设置为默认值的标志。
type explicit struct {
	explicitlySet bool
}

// ExplicitlySet返回标志是否通过flags.Unmarshaler接口设置。
func (e *explicit) ExplicitlySet() bool { return e.explicitlySet }

// ExplicitString是实现flags.Marshaler与flags.Unmarshaler的字符串
// 标志，可用作配置结构字段。
type ExplicitString struct {
	explicit
	Value string
}

// NewExplicitString使用提供的默认值创建字符串标志。
func NewExplicitString(defaultValue string) *ExplicitString {
	return &ExplicitString{Value: defaultValue}
}

// MarshalFlag实现flags.Marshaler接口。
func (e *ExplicitString) MarshalFlag() (string, error) { return e.Value, nil }

// UnmarshalFlag实现flags.Unmarshaler接口。
func (e *ExplicitString) UnmarshalFlag(value string) error {
	e.Value = value
	e.explicitlySet = true
	return nil
}

// BoolFlag是接受true/t/yes/y与false/f/no/n（不区分大小写）的布尔
// 标志。
type BoolFlag struct {
	explicit
	Value bool
}

// NewBoolFlag使用提供的默认值创建布尔标志。
func NewBoolFlag(defaultValue bool) *BoolFlag {
	return &BoolFlag{Value: defaultValue}
}

// ParseBool解析BoolFlag接受的字符串。
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y":
		return true, nil
	case "false", "f", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("%s is not a boolean", s)
}

// MarshalFlag实现flags.Marshaler接口。
func (b *BoolFlag) MarshalFlag() (string, error) {
	return strconv.FormatBool(b.Value), nil
}

// UnmarshalFlag实现flags.Unmarshaler接口。
func (b *BoolFlag) UnmarshalFlag(value string) error {
	v, err := ParseBool(value)
	if err != nil {
		return err
	}
	b.Value = v
	b.explicitlySet = true
	return nil
}
