/*
Copyright © 2026 JACOB ARTHURS
*/
package main

import "github.com/jacobarthurs/qpml/cmd"

func main() {
	cmd.Execute()
}
