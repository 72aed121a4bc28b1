package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/ashleypule/soccer-score/config"
	"github.com/ashleypule/soccer-score/logger"
)

type globalCmd struct {
	APIKey   string `help:"football-data.org API key." env:"FOOTBALL_DATA_API_KEY"`
	LogLevel string `help:"Log level (debug enables verbose logs)." env:"LOG_LEVEL" default:"info"`
}

// config 以环境变量为基础, 命令行参数覆盖
func (g *globalCmd) config() *config.Config {
	cfg := config.Load()
	if g.APIKey != "" {
		cfg.FootballDataAPIKey = g.APIKey
	}
	return cfg
}

var CLI struct {
	globalCmd

	Fixture fixtureCmd `cmd:"" help:"Predict a fixture using live statistics."`
	Mock    mockCmd    `cmd:"" help:"Predict a fixture from generated statistics."`
	Matches matchesCmd `cmd:"" help:"List recent and upcoming matches."`
}

func main() {
	// stdout 留给表格输出
	logger.SetOutput(os.Stderr, os.Stderr)

	ctx := kong.Parse(&CLI,
		kong.Name("predict"),
		kong.Description("Football match predictions from the command line."),
	)
	logger.SetLevel(CLI.LogLevel)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
