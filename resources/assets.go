package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconDir       = "icons/"
	backgroundDir = "backgrounds/"
)

//go:embed icons/*.svg
var iconFS embed.FS

//go:embed backgrounds/*.svg
var backgroundFS embed.FS

var iconCache sync.Map
var backgroundCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Background returns a Fyne resource for the given background file.
func Background(fileName string) (fyne.Resource, error) {
	return loadResource(backgroundFS, backgroundDir+fileName, &backgroundCache)
}

// MustBackground returns a Fyne resource or panics on error.
func MustBackground(fileName string) fyne.Resource {
	resource, err := Background(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
