package main

import "github.com/protocolhere/urlscan/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
