package main

import (
	"github.com/tesodev/commerce-backend/internal/app/order"
	"github.com/tesodev/commerce-backend/internal/config"
)

func main() {
	config.MustInit()
	order.MustNewApp().Run()
}
