package main

import (
	"github.com/gin-gonic/gin"

	"taskmanagerpro/connection"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}
