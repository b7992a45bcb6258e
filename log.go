//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/pyperwallet/pyperwallet/bip38"
	"github.com/pyperwallet/pyperwallet/coin"
	"github.com/pyperwallet/pyperwallet/vanity"
)

//logWriter把日志同时写到标准错误和日志旋转器。
//标准输出只用于输出硬币。
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logPipe != nil {
		logPipe.Write(p)
	}
	return len(p), nil
}

//每个子系统的记录器都由backendLog创建。
//在initLogRotator被调用之前，日志只写到标准错误。
var (
	backendLog = btclog.NewBackend(logWriter{})

	//logRotator是日志输出之一，必须通过initLogRotator关闭。
	logRotator *rotator.Rotator

	//logPipe是logRotator读取的管道写端。
	logPipe *io.PipeWriter

	log       = backendLog.Logger("PYPR")
	coinLog   = backendLog.Logger("COIN")
	bip38Log  = backendLog.Logger("BP38")
	vanityLog = backendLog.Logger("VNTY")
)

//初始化包全局记录器变量。
func init() {
	coin.UseLogger(coinLog)
	bip38.UseLogger(bip38Log)
	vanity.UseLogger(vanityLog)
}

//subsystemLoggers把每个子系统标识映射到它的记录器。
var subsystemLoggers = map[string]btclog.Logger{
	"PYPR": log,
	"COIN": coinLog,
	"BP38": bip38Log,
	"VNTY": vanityLog,
}

//initLogRotator初始化日志文件旋转器，把日志写入logFile并在
//同一目录中创建滚动文件。必须在使用包全局日志旋转器变量
//之前调用。
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	pr, pw := io.Pipe()
	go r.Run(pr)

	logRotator = r
	logPipe = pw
	return nil
}

//closeLogRotator关闭管道和旋转器，未初始化时什么也不做。
func closeLogRotator() {
	if logRotator == nil {
		return
	}
	logPipe.Close()
	logRotator.Close()
}

//setLogLevel设置子系统的日志级别。无效的子系统被忽略。
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

//setLogLevels把所有子系统设置为同一日志级别。
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}
