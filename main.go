package main

import (
	"github.com/kampuspmb/admin_service/config"
	"github.com/kampuspmb/admin_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
