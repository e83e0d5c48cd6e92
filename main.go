package main

import "lifeops-backend/cmd/root"

func main() {
	root.Execute()
}
