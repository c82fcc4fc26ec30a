package main

import (
	"github.com/tesodev/commerce-backend/internal/app/customer"
	"github.com/tesodev/commerce-backend/internal/config"
)

func main() {
	config.MustInit()
	customer.MustNewApp().Run()
}
