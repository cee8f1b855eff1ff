package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/obadiaha/safe-trade-scout-v2/checker"
	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/log"
	"github.com/obadiaha/safe-trade-scout-v2/utils"
)

var (
	checkToken string
	checkChain string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "run a one-shot token safety check and print the result",
	Run: func(cmd *cobra.Command, args []string) {
		config.SetupConfig("")
		log.InitLog(config.Conf.Log.Path)
		if !utils.IsValidTokenAddress(checkToken) {
			logrus.Fatalf("invalid token address %s, expect 0x-prefixed 40 hex digits", checkToken)
		}
		if !utils.IsSupportedChain(checkChain) {
			logrus.Fatalf("unsupported chain %s, available: %v", checkChain, utils.SupportedChains())
		}
		result, err := checker.NewChecker().Check(context.Background(), checkToken, checkChain)
		if err != nil {
			logrus.Fatalf("check token %s on %s is err: %v", checkToken, checkChain, err)
		}
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logrus.Fatalf("marshal check result is err: %v", err)
		}
		fmt.Println(string(output))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&config.CfgPath, "config", "c", "", "set config file path")
	checkCmd.Flags().StringVarP(&config.Env, "env", "e", "dev", "server environment type, available: dev, prod")
	checkCmd.Flags().StringVarP(&checkToken, "token", "t", "", "token contract address, 0x-prefixed")
	checkCmd.Flags().StringVarP(&checkChain, "chain", "n", "ethereum", "chain name")
	if err := checkCmd.MarkFlagRequired("token"); err != nil {
		logrus.Panicf("mark token flag required is err: %v", err)
	}
}
