package main

import (
	"github.com/humanbelnik/matchroom/internal/app"
	"github.com/humanbelnik/matchroom/internal/config"
)

func main() {
	cfg := config.Load()
	app.Go(cfg)
}
