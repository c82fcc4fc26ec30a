package main

import (
	"github.com/tesodev/commerce-backend/internal/app/gateway"
	"github.com/tesodev/commerce-backend/internal/config"
)

func main() {
	config.MustInit()
	gateway.MustNewApp().Run()
}
