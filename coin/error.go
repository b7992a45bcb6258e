//版权所有（c）2014 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package coin

import (
	"errors"
	"fmt"
)

// ErrorCode标识一种错误。
type ErrorCode int

// 这些常量用于标识特定的错误。
const (
	// ErrEncoding表示输入字符串无法按网络要求的编码解析。
	// Err字段保存底层的解码错误。
	ErrEncoding ErrorCode = iota

	// ErrInvalidCoin表示校验和、版本字节、长度或密钥与其他字段
	// 不一致。构造失败时不会返回硬币。
	ErrInvalidCoin

	// ErrNotImplemented表示网络不支持所请求的加载方式，例如
	// 非隐私网络上的查看密钥。
	ErrNotImplemented

	// ErrDecryptionUnsuccessful表示口令错误。
	ErrDecryptionUnsuccessful

	// ErrAlreadyEncrypted表示对已加密的硬币再次加密。
	ErrAlreadyEncrypted

	// ErrNotEncrypted表示对明文硬币解密。
	ErrNotEncrypted

	// ErrNoCryptor表示设置中没有加密器。
	ErrNoCryptor

	// ErrWrongCryptor表示当前加密器与密文的加密类型不符。
	ErrWrongCryptor

	// ErrNoPrivateKey表示操作需要私钥，但硬币只持有公开数据。
	ErrNoPrivateKey
)

// 将错误代码值映射回其常量名，以便进行漂亮的打印。
var errorCodeStrings = map[ErrorCode]string{
	ErrEncoding:               "ErrEncoding",
	ErrInvalidCoin:            "ErrInvalidCoin",
	ErrNotImplemented:         "ErrNotImplemented",
	ErrDecryptionUnsuccessful: "ErrDecryptionUnsuccessful",
	ErrAlreadyEncrypted:       "ErrAlreadyEncrypted",
	ErrNotEncrypted:           "ErrNotEncrypted",
	ErrNoCryptor:              "ErrNoCryptor",
	ErrWrongCryptor:           "ErrWrongCryptor",
	ErrNoPrivateKey:           "ErrNoPrivateKey",
}

// String将错误代码返回为人类可读的名称。
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error是硬币操作返回的错误类型。ErrorCode标识错误种类，
// 调用方可以用IsError按种类判断，而不必解析描述文本。
//
// ErrEncoding与ErrInvalidCoin通常还会在Err字段中带有底层错误。
type Error struct {
	ErrorCode   ErrorCode // 描述错误的类型
	Description string    // 问题的人类可读描述
	Err         error     // 潜在错误
}

// Error满足error接口并打印人类可读的错误。
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap返回底层错误。
func (e Error) Unwrap() error {
	return e.Err
}

func coinError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}

// IsError返回err的错误链中是否有带匹配错误代码的Error。
func IsError(err error, code ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.ErrorCode == code
}
