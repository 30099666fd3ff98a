package main

import (
	"fmt"
	"os"

	"spendreport/cmd/add"
	"spendreport/cmd/categorize"
	cmdexport "spendreport/cmd/export"
	"spendreport/cmd/root"
	"spendreport/cmd/summarize"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(cmdexport.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(add.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
