package main

import (
	"github.com/tesodev/commerce-backend/internal/app/consumer"
	"github.com/tesodev/commerce-backend/internal/config"
)

func main() {
	config.MustInit()
	consumer.MustNewApp().Run()
}
