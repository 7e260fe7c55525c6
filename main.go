package main

import "github.com/nkmathew/kikuyu-language-hub-sub004/cmd"

func main() {
	cmd.Execute()
}
