package main

import "github.com/devia2025/progtop/cmd"

func main() {
	cmd.Execute()
}
