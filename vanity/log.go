//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package vanity

import "github.com/btcsuite/btclog"

// log是一个没有输出过滤器初始化的日志程序。这意味着在调用方
// 请求之前，包默认不会执行任何日志记录。
var log btclog.Logger

// 默认的日志记录量为“无”。
func init() {
	DisableLog()
}

// DisableLog禁用所有库日志输出。日志记录输出默认被禁用，
// 直到调用UseLogger。
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger使用指定的记录器输出包日志信息。
func UseLogger(logger btclog.Logger) {
	log = logger
}
