package main

import (
	"github.com/nguyentantai21042004/chat-insights/internal/commands"
)

func main() {
	commands.Execute()
}
