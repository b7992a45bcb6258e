//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"bytes"
	"fmt"
	"strings"
)

//semanticAlphabet是语义版本中预发布与构建元数据允许的字符。
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

//这些常量定义应用程序的语义版本，遵循
//http://semver.org/ 。
const (
	appMajor uint = 0
	appMinor uint = 3
	appPatch uint = 0

	//appPreRelease必须只包含semanticAlphabet中的字符。
	appPreRelease = "alpha"
)

//appBuild在构建时通过链接器标志设置，必须只包含
//semanticAlphabet中的字符。
var appBuild string

//version返回应用程序的语义版本字符串。
func version() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)

	preRelease := normalizeVerString(appPreRelease)
	if preRelease != "" {
		version = fmt.Sprintf("%s-%s", version, preRelease)
	}

	build := normalizeVerString(appBuild)
	if build != "" {
		version = fmt.Sprintf("%s+%s", version, build)
	}

	return version
}

//normalizeVerString删除不在semanticAlphabet中的字符。
func normalizeVerString(str string) string {
	var result bytes.Buffer
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
