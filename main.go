package main

import "github.com/zlobste/icmp6match/internal/cli"

func main() {
	cli.Execute()
}
