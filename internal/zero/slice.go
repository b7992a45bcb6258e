//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

// Package zero清除内存中的私钥材料，而不是等待垃圾回收。
package zero

// Bytes将b中所有字节置零。
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Bytea32将32字节数组置零，常用于对称密钥与私钥标量。
func Bytea32(b *[32]byte) {
	*b = [32]byte{}
}
