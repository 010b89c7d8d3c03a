// Package docs registers the API description served at /swagger.
package docs

import "github.com/swaggo/swag"

// @title Dispatch API
// @version 1.0
// @description Courier dispatch service: order claiming, delivery tracking and payouts
// @host localhost:8080
// @BasePath /api/v1
// @schemes http

var SwaggerInfo = &swag.Spec{
	Version:     "1.0",
	Host:        "localhost:8080",
	BasePath:    "/api/v1",
	Schemes:     []string{"http"},
	Title:       "Dispatch API",
	Description: "Courier dispatch service: order claiming, delivery tracking and payouts",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
