package main

import "github.com/dbsmedya/titlex/cmd/titlex/cmd"

func main() {
	cmd.Execute()
}
