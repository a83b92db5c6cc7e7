package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/mvnupdate/internal"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/controllers"
)

func newContainer() *dig.Container {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}
	return container
}

func injectAppContext(container *dig.Container) *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectInspectController(container *dig.Container) *controllers.InspectController {
	var inspectController *controllers.InspectController
	if err := container.Invoke(func(ic *controllers.InspectController) {
		inspectController = ic
	}); err != nil {
		panic(err)
	}

	return inspectController
}
