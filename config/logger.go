package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type LoggingConfig struct {
	Console LoggerConfig `yaml:"console"`
}

// Prepare returns our standard logger - configured zap logger for use
// by the program.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {

	// Console - split stdout and stderr, handle colors and redirection

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stdout) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderLP := zapcore.NewConsoleEncoder(ec)

	ec = zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderHP := zapcore.NewConsoleEncoder(ec)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var coreHP, coreLP zapcore.Core
	switch conf.Console.Level {
	case "normal":
		coreLP = zapcore.NewCore(encoderLP, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		coreHP = zapcore.NewCore(encoderHP, zapcore.Lock(os.Stderr), highPriority)
	case "debug":
		coreLP = zapcore.NewCore(encoderLP, zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.DebugLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		coreHP = zapcore.NewCore(encoderHP, zapcore.Lock(os.Stderr), highPriority)
	default:
		coreLP = zapcore.NewNopCore()
		coreHP = zapcore.NewNopCore()
	}

	return zap.New(zapcore.NewTee(coreHP, coreLP)).Named("sheetc"), nil
}
