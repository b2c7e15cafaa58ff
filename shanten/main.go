package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goshanten/common/config"
	"goshanten/common/log"
	"goshanten/common/metrics"
	"goshanten/shanten/app"
)

var (
	configFile string
	seed       uint64
	discard    int
)

var rootCmd = &cobra.Command{
	Use:          "shanten",
	Short:        "立直麻将向听计算",
	Long:         `配牌、解析牌串并计算一般型、七对子、国士无双的向听数`,
	SilenceUsage: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "洗牌配牌，摸一张再打一张",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()
		return a.Demo(cmd.OutOrStdout(), seed, discard)
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <hand>",
	Short: "计算给定牌串的向听，如 123m456p789s1122z",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()
		return a.Eval(cmd.OutOrStdout(), args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "以 HTTP 服务提供向听计算",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		cfg := config.Current()
		log.Info("配置文件: %+v", cfg)
		go func() {
			log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", cfg.MetricPort)
			if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)); err != nil {
				log.Error("监控服务退出: %v", err)
			}
		}()
		return a.Serve(context.Background())
	},
}

func setup() (*app.App, error) {
	cfg, err := config.Load(configFile, func(next *config.Config) {
		log.InitLog(next.AppName, next.Log.Level)
		log.Info("配置已更新")
	})
	if err != nil {
		return nil, err
	}
	log.InitLog(cfg.AppName, cfg.Log.Level)
	return app.New(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")
	demoCmd.Flags().Uint64Var(&seed, "seed", 0, "洗牌种子，0 表示使用配置或当前时间")
	demoCmd.Flags().IntVar(&discard, "discard", 5, "摸牌前打出的手牌下标")
	rootCmd.AddCommand(demoCmd, evalCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if app.IsUserError(err) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			log.Error("error happen: %v", err)
		}
		os.Exit(1)
	}
}
