package main

import (
	"context"

	"github.com/MauroDruwel/Swimrankings/cmd/swimrankings-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
