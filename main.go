package main

import "review-bot/src/handler/cli"

func main() {
	cli.Run()
}
