package main

import (
	"github.com/OmVilasShimpi/LocalGPSystem/configuration"
	"github.com/OmVilasShimpi/LocalGPSystem/controllers"
	"github.com/OmVilasShimpi/LocalGPSystem/routes"
)

func Init() {
	configuration.InitLogger()
	configuration.ConfigDB()
	configuration.InitRedis()
	controllers.Setup()
}

func main() {
	//Perform application initialization
	Init()
	r := routes.UserRoutes()

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
