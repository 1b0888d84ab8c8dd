package main

import "github.com/bdpublic/updates-api/cmd"

func main() {
	cmd.Execute()
}
