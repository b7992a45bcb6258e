//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/pyperwallet/pyperwallet/internal/cfgutil"
	"github.com/pyperwallet/pyperwallet/netparams"
)

const (
	defaultConfigFilename = "pyperwallet.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "pyperwallet.log"
	defaultCoin           = "bitcoin"
	defaultEncryption     = "none"

	//inputGenerate、inputPrompt与inputBrain是-i的特殊取值，其他
	//取值按硬币输入导入。
	inputGenerate = "gen"
	inputPrompt   = "prompt"
	inputBrain    = "brain"
)

var (
	defaultAppDataDir = btcutil.AppDataDir("pyperwallet", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

type config struct {
	//一般应用行为
	ConfigFile  *cfgutil.ExplicitString `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool                    `short:"V" long:"version" description:"Display version information and exit"`
	AppDataDir  *cfgutil.ExplicitString `short:"A" long:"appdata" description:"Application data directory for config and logs"`
	DebugLevel  string                  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}, or SUBSYS=level pairs; 'show' lists subsystems"`
	LogDir      string                  `long:"logdir" description:"Directory to log output."`
	NoPrompt    bool                    `long:"noprompt" description:"Fail instead of prompting when input is required"`

	//硬币选项
	Coin        string            `short:"c" long:"coin" description:"Coin network name or ticker"`
	Input       string            `short:"i" long:"input" description:"Coin input: 'gen' generates a new coin, 'prompt' asks for it, 'brain' derives it from a passphrase, anything else is imported"`
	Encryption  string            `short:"e" long:"encryption" description:"Private key encryption {none, bip38}"`
	Compression *cfgutil.BoolFlag `long:"compression" description:"Use compressed public keys {true, false}"`
	ListCoins   bool              `long:"listcoins" description:"List supported coin networks and exit"`

	//虚荣地址选项
	Vanity  string `long:"vanity" description:"Search for an address starting with this alphanumeric pattern"`
	Workers int    `long:"workers" description:"Number of vanity search workers (default number of CPUs)"`

	//输出选项
	OutFile string `short:"f" long:"outfile" description:"Write the coin to this file instead of stdout"`
}

//cleanandexpandpath扩展环境变量并在
//传递路径，清除结果并返回。
func cleanAndExpandPath(path string) string {
	//注意：os.expandenv不适用于windows cmd.exe样式
	//%variable%，但这些变量仍然可以通过posix样式进行扩展。
	//$变量。
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	//将initial~扩展到当前用户的主目录，或~otheruser
	//到其他用户的主目录。在窗户上，向前和向后
	//可以使用斜线。
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	//如果用户查找失败或用户没有主目录，则回退到CWD。
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

//validLogLevel返回logLevel是否为有效的调试日志级别。
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

//SupportedSubsystems返回受支持子系统的已排序切片
//日志记录目的。
func supportedSubsystems() []string {
	//将子系统记录器映射键转换为切片。
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	//对子系统进行排序以便稳定显示。
	sort.Strings(subsystems)
	return subsystems
}

//parsandsetdebuglevels尝试解析指定的调试级别并设置
//相应的水平。如果有任何错误
//无效。
func parseAndSetDebugLevels(debugLevel string) error {
	//当指定的字符串没有任何delimter时，将其视为
	//所有子系统的日志级别。
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		//验证调试日志级别。
		if !validLogLevel(debugLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		//更改所有子系统的日志记录级别。
		setLogLevels(debugLevel)

		return nil
	}

	//检测时将指定的字符串拆分为子系统/级别对
	//发布并相应更新日志级别。
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "The specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		//提取指定的子系统和日志级别。
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		//验证子系统。
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "The specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		//验证日志级别。
		if !validLogLevel(logLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

//validEncryption返回name是否为-e支持的取值。
func validEncryption(name string) bool {
	_, ok := cryptors[name]
	return ok || name == defaultEncryption
}

//loadconfig使用配置文件和命令初始化并分析配置
//行选项。
//
//配置过程如下：
//1）从具有健全设置的默认配置开始
//2）预分析命令行以检查备用配置文件
//3）使用任何指定选项加载配置文件覆盖默认值
//4）解析cli选项并覆盖/添加任何指定选项
//
//以上结果导致pyperwallet在没有任何配置的情况下正常工作
//设置，同时仍允许用户用配置文件覆盖设置
//和命令行选项。命令行选项始终优先。
func loadConfig() (*config, []string, error) {
	//默认配置。
	cfg := config{
		DebugLevel:  defaultLogLevel,
		ConfigFile:  cfgutil.NewExplicitString(defaultConfigFile),
		AppDataDir:  cfgutil.NewExplicitString(defaultAppDataDir),
		LogDir:      defaultLogDir,
		Coin:        defaultCoin,
		Input:       inputGenerate,
		Encryption:  defaultEncryption,
		Compression: cfgutil.NewBoolFlag(true),
		Workers:     runtime.NumCPU(),
	}

	//预分析命令行选项，以查看是否有其他配置
	//指定了文件或版本标志。
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			preParser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	//显示版本并退出。
	funcName := "loadConfig"
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	//从文件加载附加配置。
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	configFilePath := preCfg.ConfigFile.Value
	if preCfg.ConfigFile.ExplicitlySet() {
		configFilePath = cleanAndExpandPath(configFilePath)
	} else {
		appDataDir := preCfg.AppDataDir.Value
		if appDataDir != defaultAppDataDir {
			configFilePath = filepath.Join(appDataDir, defaultConfigFilename)
		}
	}
	err = flags.NewIniParser(parser).ParseFile(configFilePath)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return nil, nil, err
		}
		configFileError = err
	}

	//再次分析命令行选项以确保它们优先。
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	//如果指定了备用数据目录且日志目录保持默认值，
	//日志目录随之移动。
	if cfg.AppDataDir.ExplicitlySet() {
		cfg.AppDataDir.Value = cleanAndExpandPath(cfg.AppDataDir.Value)
		if cfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.AppDataDir.Value, defaultLogDirname)
		}
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	//列出支持的子系统并退出的特殊显示命令。
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	//初始化日志旋转。日志旋转初始化后，
	//可以使用记录器变量。
	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	//分析、验证和设置调试日志级别。
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	//列出网络时不需要验证硬币选项。
	if cfg.ListCoins {
		return &cfg, remainingArgs, nil
	}

	if _, err := netparams.Lookup(cfg.Coin); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	cfg.Encryption = strings.ToLower(cfg.Encryption)
	if !validEncryption(cfg.Encryption) {
		str := "%s: the specified encryption [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.Encryption)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	if cfg.Workers < 1 {
		str := "%s: the number of workers must be positive"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	//虚荣搜索自己生成硬币，不能和导入同时使用。
	if cfg.Vanity != "" && cfg.Input != inputGenerate {
		str := "%s: the --vanity option may not be used together " +
			"with --input"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	//不覆盖已有的输出文件，其中可能保存着其他私钥。
	if cfg.OutFile != "" {
		cfg.OutFile = cleanAndExpandPath(cfg.OutFile)
		exists, err := cfgutil.FileExists(cfg.OutFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
		if exists {
			str := "%s: the output file `%v` already exists"
			err := fmt.Errorf(str, funcName, cfg.OutFile)
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	//在最后的命令行分析后警告丢失的配置文件
	//成功了。这可以防止帮助消息上的警告和无效
	//选项。
	if configFileError != nil {
		log.Warnf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}
