package main

import "team-checkin-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
